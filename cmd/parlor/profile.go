package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parlor/internal/profile"
)

var (
	flagName   string
	flagSound  string
	flagVolume float64
	flagReset  bool
)

var profileCmd = &cobra.Command{
	Use:   "profile <game>",
	Short: "Show or change player settings for a game",
	Long: `Show the player name, sound settings and best score of a game.
Modes of one game share a profile. Flags change the stored values;
--reset deletes everything stored for the game, saved rounds included.

Examples:
  parlor profile 2048
  parlor profile hangman --name Ada --sound off
  parlor profile tictactoe --volume 0.5
  parlor profile 2048 --reset`,
	Args: cobra.ExactArgs(1),
	Run:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&flagName, "name", "", "Player name")
	profileCmd.Flags().StringVar(&flagSound, "sound", "", "Sound: on or off")
	profileCmd.Flags().Float64Var(&flagVolume, "volume", 1, "Volume from 0 to 1")
	profileCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the game's settings, progress and saved rounds")
}

func runProfile(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	store := mustOpenStore()
	defer store.Close()

	ns := profile.NamespaceFor(gameID)
	p := profile.New(store, ns)

	if flagReset {
		n, err := store.Delete(ns + "_")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting profile: %v\n", err)
			return
		}
		fmt.Printf("Deleted %d stored values for %s.\n", n, ns)
		return
	}

	if err := applyProfileFlags(cmd, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	sound := "off"
	if p.SoundEnabled() {
		sound = "on"
	}
	fmt.Printf("Profile - %s\n", ns)
	fmt.Println()
	fmt.Printf("  Name:    %s\n", p.PlayerName())
	fmt.Printf("  Sound:   %s\n", sound)
	fmt.Printf("  Volume:  %d%%\n", int(p.Volume()*100+0.5))
	fmt.Printf("  Best:    %d\n", p.BestScore())
}

// applyProfileFlags stores the settings given on the command line.
func applyProfileFlags(cmd *cobra.Command, p *profile.Profile) error {
	flags := cmd.Flags()

	if flags.Changed("name") {
		if _, err := p.SetPlayerName(flagName); err != nil {
			return err
		}
	}

	if flags.Changed("sound") {
		switch flagSound {
		case "on":
			if err := p.SetSoundEnabled(true); err != nil {
				return err
			}
		case "off":
			if err := p.SetSoundEnabled(false); err != nil {
				return err
			}
		default:
			return fmt.Errorf("--sound must be on or off, got %q", flagSound)
		}
	}

	if flags.Changed("volume") {
		if _, err := p.SetVolume(flagVolume); err != nil {
			return err
		}
	}

	return nil
}
