package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"dc-go/internal/app"
	"dc-go/internal/cards"
	"dc-go/internal/config"
	"dc-go/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "CreateProfile", "Export").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// readPassphrase prompts for a passphrase without echoing it.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(pass), nil
}

var rootCmd = &cobra.Command{
	Use:   "dc",
	Short: "Personal relationship card tracker",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		hostID := uuid.New().String()
		cfg := config.NewConfig(hostID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Host ID: %s\n", hostID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Host ID:  %s\n", cfg.HostID)
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:  %s\n", cfg.LogDir)
		fmt.Printf("Database: %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Generate encryption keys for encrypted exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetupEncryption")
		if err != nil {
			return err
		}
		defer a.Close()

		pass, err := readPassphrase("Passphrase for private key: ")
		if err != nil {
			return err
		}

		if err := a.SetupEncryption(pass); err != nil {
			return fmt.Errorf("generating keys: %w", err)
		}

		fmt.Println("Encryption keys generated.")
		return nil
	},
}

// profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles, most recently updated first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListProfiles")
		if err != nil {
			return err
		}
		defer a.Close()

		profiles, err := a.Service().ListProfiles(cmd.Context())
		if err != nil {
			return err
		}

		if len(profiles) == 0 {
			fmt.Println("No profiles.")
			return nil
		}

		for _, p := range profiles {
			last := "-"
			if p.LastInteractionAt != "" {
				last = p.LastInteractionAt
			}
			fmt.Printf("%s  %-20s  %-10s  last: %s\n", p.ID, p.Name, p.Status, last)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a profile with its timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		p, err := a.Service().GetProfile(ctx, args[0])
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("no profile with id %s", args[0])
		}

		fmt.Printf("Name:    %s\n", p.Name)
		fmt.Printf("Status:  %s\n", p.Status)
		if p.Contacts != nil {
			if p.Contacts.Telegram != "" {
				fmt.Printf("TG:      %s\n", p.Contacts.Telegram)
			}
			if p.Contacts.Instagram != "" {
				fmt.Printf("IG:      %s\n", p.Contacts.Instagram)
			}
		}
		if !a.Settings().HideScores() {
			if p.Attractiveness != nil {
				fmt.Printf("Attract: %d/5\n", *p.Attractiveness)
			}
			if p.Vibe != nil {
				fmt.Printf("Vibe:    %d/5\n", *p.Vibe)
			}
		}
		if p.Notes != "" {
			fmt.Printf("Notes:   %s\n", p.Notes)
		}
		if p.LastInteractionAt != "" {
			fmt.Printf("Last interaction: %s\n", p.LastInteractionAt)
		}
		if !a.Settings().HidePhotos() && len(p.PhotoIDs) > 0 {
			fmt.Printf("Photos:  %s\n", strings.Join(p.PhotoIDs, ", "))
		}

		events, err := a.Service().ListEvents(ctx, p.ID)
		if err != nil {
			return err
		}
		if len(events) > 0 {
			fmt.Println("\nTimeline:")
			for _, ev := range events {
				line := fmt.Sprintf("  %s  %-9s", ev.At, ev.Type)
				if ev.Mood != nil {
					line += "  [" + *ev.Mood + "]"
				}
				if ev.Text != nil {
					line += "  " + *ev.Text
				}
				fmt.Println(line + "  (" + ev.ID + ")")
			}
		}
		return nil
	},
}

// profileInputFromFlags builds the creation input from the new command's flags.
func profileInputFromFlags(cmd *cobra.Command) cards.ProfileInput {
	name, _ := cmd.Flags().GetString("name")
	status, _ := cmd.Flags().GetString("status")
	notes, _ := cmd.Flags().GetString("notes")

	in := cards.ProfileInput{
		Name:   name,
		Status: model.ProfileStatus(status),
		Notes:  notes,
	}

	telegram, _ := cmd.Flags().GetString("telegram")
	instagram, _ := cmd.Flags().GetString("instagram")
	if telegram != "" || instagram != "" {
		in.Contacts = &model.Contacts{Telegram: telegram, Instagram: instagram}
	}

	if cmd.Flags().Changed("attractiveness") {
		v, _ := cmd.Flags().GetInt("attractiveness")
		in.Attractiveness = &v
	}
	if cmd.Flags().Changed("vibe") {
		v, _ := cmd.Flags().GetInt("vibe")
		in.Vibe = &v
	}

	return in
}

var profileNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CreateProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Service().CreateProfile(cmd.Context(), profileInputFromFlags(cmd))
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}

		fmt.Printf("Created profile %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Update profile fields; only provided flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UpdateProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		var patch cards.ProfilePatch
		flags := cmd.Flags()

		if flags.Changed("name") {
			v, _ := flags.GetString("name")
			patch.Name = &v
		}
		if flags.Changed("status") {
			v, _ := flags.GetString("status")
			status := model.ProfileStatus(v)
			patch.Status = &status
		}
		if flags.Changed("notes") {
			v, _ := flags.GetString("notes")
			patch.Notes = &v
		}
		// Contacts are replaced as a unit: providing either handle
		// rewrites both from the flag values.
		if flags.Changed("telegram") || flags.Changed("instagram") {
			telegram, _ := flags.GetString("telegram")
			instagram, _ := flags.GetString("instagram")
			patch.Contacts = &model.Contacts{Telegram: telegram, Instagram: instagram}
		}
		if flags.Changed("attractiveness") {
			v, _ := flags.GetInt("attractiveness")
			patch.Attractiveness = &v
		}
		if flags.Changed("vibe") {
			v, _ := flags.GetInt("vibe")
			patch.Vibe = &v
		}

		p, err := a.Service().UpdateProfile(cmd.Context(), args[0], patch)
		if err != nil {
			return fmt.Errorf("updating profile: %w", err)
		}

		fmt.Printf("Updated profile %s\n", p.ID)
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a profile with its events and photos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteProfile")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().DeleteProfile(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("deleting profile: %w", err)
		}

		fmt.Printf("Deleted profile %s\n", args[0])
		return nil
	},
}

// event command
var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage timeline events",
}

var eventAddCmd = &cobra.Command{
	Use:   "add PROFILE_ID",
	Short: "Log an interaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddEvent")
		if err != nil {
			return err
		}
		defer a.Close()

		flags := cmd.Flags()
		evType, _ := flags.GetString("type")
		at, _ := flags.GetString("at")
		if at == "" {
			at = cards.FormatISO(time.Now())
		}

		in := cards.EventInput{
			Type: model.EventType(evType),
			At:   at,
		}
		if flags.Changed("mood") {
			v, _ := flags.GetString("mood")
			in.Mood = &v
		}
		if flags.Changed("text") {
			v, _ := flags.GetString("text")
			in.Text = &v
		}

		ev, err := a.Service().AddEvent(cmd.Context(), args[0], in)
		if err != nil {
			return fmt.Errorf("adding event: %w", err)
		}

		fmt.Printf("Logged %s at %s (%s)\n", ev.Type, ev.At, ev.ID)
		return nil
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list PROFILE_ID",
	Short: "List a profile's events, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListEvents")
		if err != nil {
			return err
		}
		defer a.Close()

		events, err := a.Service().ListEvents(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No events.")
			return nil
		}

		printEvents(events)
		return nil
	},
}

var eventRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "List events across all profiles within a time window",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		a, err := newApp("ListEventsRange")
		if err != nil {
			return err
		}
		defer a.Close()

		events, err := a.Service().ListEventsRange(cmd.Context(), from, to)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No events in range.")
			return nil
		}

		printEvents(events)
		return nil
	},
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete EVENT_ID",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteEvent")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().DeleteEvent(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("deleting event: %w", err)
		}

		fmt.Printf("Deleted event %s\n", args[0])
		return nil
	},
}

func printEvents(events []*model.TimelineEvent) {
	for _, ev := range events {
		line := fmt.Sprintf("%s  %-9s  profile:%s", ev.At, ev.Type, ev.ProfileID)
		if ev.Text != nil {
			line += "  " + *ev.Text
		}
		fmt.Println(line + "  (" + ev.ID + ")")
	}
}

// photo command
var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage profile photos",
}

var photoAddCmd = &cobra.Command{
	Use:   "add PROFILE_ID FILE",
	Short: "Attach a photo to a profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading photo file: %w", err)
		}
		mime := http.DetectContentType(data)

		a, err := newApp("AddPhoto")
		if err != nil {
			return err
		}
		defer a.Close()

		photo, err := a.Service().AddPhoto(cmd.Context(), args[0], mime, data)
		if err != nil {
			return fmt.Errorf("adding photo: %w", err)
		}

		fmt.Printf("Added photo %s (%s, %d bytes)\n", photo.ID, photo.Mime, len(data))
		return nil
	},
}

var photoRemoveCmd = &cobra.Command{
	Use:   "remove PROFILE_ID PHOTO_ID",
	Short: "Detach and delete a photo",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemovePhoto")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RemovePhoto(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("removing photo: %w", err)
		}

		fmt.Printf("Removed photo %s\n", args[1])
		return nil
	},
}

var photoSaveCmd = &cobra.Command{
	Use:   "save PHOTO_ID FILE",
	Short: "Write a photo's bytes to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetPhoto")
		if err != nil {
			return err
		}
		defer a.Close()

		photo, err := a.Service().GetPhoto(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if photo == nil {
			return fmt.Errorf("no photo with id %s", args[0])
		}

		if err := os.WriteFile(args[1], photo.Blob, 0644); err != nil {
			return fmt.Errorf("writing photo file: %w", err)
		}

		fmt.Printf("Saved %s (%s, %d bytes)\n", args[1], photo.Mime, len(photo.Blob))
		return nil
	},
}

// export / import commands
var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export all data to a JSON dump",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encrypt, _ := cmd.Flags().GetBool("encrypt")

		path := fmt.Sprintf("dc-export-%s.json", time.Now().UTC().Format("20060102T150405Z"))
		if len(args) == 1 {
			path = args[0]
		} else if encrypt {
			path += ".age"
		}

		a, err := newApp("Export")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ExportToFile(cmd.Context(), path, encrypt); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a JSON dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modeFlag, _ := cmd.Flags().GetString("mode")
		encrypted, _ := cmd.Flags().GetBool("encrypted")

		a, err := newApp("Import")
		if err != nil {
			return err
		}
		defer a.Close()

		var decryptCtx cards.DecryptionContext
		if encrypted {
			pass, err := readPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			decryptCtx, err = a.Unlock(pass)
			if err != nil {
				return fmt.Errorf("unlocking private key: %w", err)
			}
		}

		if err := a.ImportFromFile(cmd.Context(), args[0], cards.ImportMode(modeFlag), decryptCtx); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("Imported %s (%s)\n", args[0], modeFlag)
		return nil
	},
}

// backup / restore commands
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload an export dump to the configured vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		encrypt, _ := cmd.Flags().GetBool("encrypt")

		a, err := newApp("Backup")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Backup(cmd.Context(), encrypt); err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}

		fmt.Println("Backup uploaded.")
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Replace all data with the vaulted backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		encrypted, _ := cmd.Flags().GetBool("encrypted")

		a, err := newApp("Restore")
		if err != nil {
			return err
		}
		defer a.Close()

		var decryptCtx cards.DecryptionContext
		if encrypted {
			pass, err := readPassphrase("Passphrase: ")
			if err != nil {
				return err
			}
			decryptCtx, err = a.Unlock(pass)
			if err != nil {
				return fmt.Errorf("unlocking private key: %w", err)
			}
		}

		if err := a.Restore(cmd.Context(), decryptCtx); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		fmt.Println("Restore complete.")
		return nil
	},
}

// wipe command
var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all profiles, events and photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("refusing to wipe without --force on a non-interactive stdin")
			}
			fmt.Print("This deletes ALL data. Type 'wipe' to confirm: ")
			reader := bufio.NewReader(os.Stdin)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading confirmation: %w", err)
			}
			if strings.TrimSpace(answer) != "wipe" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		a, err := newApp("WipeAll")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().WipeAll(cmd.Context()); err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		fmt.Println("All data deleted.")
		return nil
	},
}

// privacy command
var privacyCmd = &cobra.Command{
	Use:   "privacy",
	Short: "Manage privacy toggles",
}

var privacyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show privacy toggles",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ShowPrivacy")
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Printf("hide-photos: %v\n", a.Settings().HidePhotos())
		fmt.Printf("hide-scores: %v\n", a.Settings().HideScores())
		return nil
	},
}

var privacySetCmd = &cobra.Command{
	Use:   "set FLAG on|off",
	Short: "Set a privacy toggle (hide-photos or hide-scores)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value bool
		switch args[1] {
		case "on":
			value = true
		case "off":
			value = false
		default:
			return fmt.Errorf("value must be 'on' or 'off', got %q", args[1])
		}

		a, err := newApp("SetPrivacy")
		if err != nil {
			return err
		}
		defer a.Close()

		switch args[0] {
		case "hide-photos":
			err = a.Settings().SetHidePhotos(value)
		case "hide-scores":
			err = a.Settings().SetHideScores(value)
		default:
			return fmt.Errorf("unknown flag %q (expected hide-photos or hide-scores)", args[0])
		}
		if err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configKeysCmd)

	// profile subcommands
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileNewCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	for _, c := range []*cobra.Command{profileNewCmd, profileEditCmd} {
		c.Flags().String("name", "", "Display name")
		c.Flags().String("status", string(model.StatusNew), "Status: New, Talking, FirstDate, Regular, Cooling or Closed")
		c.Flags().String("telegram", "", "Telegram handle")
		c.Flags().String("instagram", "", "Instagram handle")
		c.Flags().Int("attractiveness", 0, "Attractiveness rating 0-5")
		c.Flags().Int("vibe", 0, "Vibe rating 0-5")
		c.Flags().String("notes", "", "Free-form notes")
	}

	// event subcommands
	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventRangeCmd)
	eventCmd.AddCommand(eventDeleteCmd)
	eventAddCmd.Flags().String("type", string(model.EventMessage), "Event type: message, call, date or important")
	eventAddCmd.Flags().String("at", "", "When the interaction happened (ISO-8601, defaults to now)")
	eventAddCmd.Flags().String("mood", "", "Mood note")
	eventAddCmd.Flags().String("text", "", "Event text")
	eventRangeCmd.Flags().String("from", "", "Range start (ISO-8601, inclusive)")
	eventRangeCmd.Flags().String("to", "", "Range end (ISO-8601, inclusive)")
	eventRangeCmd.MarkFlagRequired("from")
	eventRangeCmd.MarkFlagRequired("to")

	// photo subcommands
	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoRemoveCmd)
	photoCmd.AddCommand(photoSaveCmd)

	// privacy subcommands
	privacyCmd.AddCommand(privacyShowCmd)
	privacyCmd.AddCommand(privacySetCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(photoCmd)
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Bool("encrypt", false, "Encrypt the dump with the configured public key")
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("mode", string(cards.ImportReplace), "Import mode: replace or merge")
	importCmd.Flags().Bool("encrypted", false, "The file is an encrypted dump")
	rootCmd.AddCommand(backupCmd)
	backupCmd.Flags().Bool("encrypt", false, "Encrypt the dump before upload")
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().Bool("encrypted", false, "The vaulted dump is encrypted")
	rootCmd.AddCommand(wipeCmd)
	wipeCmd.Flags().Bool("force", false, "Skip the interactive confirmation")
	rootCmd.AddCommand(privacyCmd)
}
