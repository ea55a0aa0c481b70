package commands

import (
	"github.com/spf13/pflag"

	"github.com/conduit-lang/fastapi-gen/internal/scaffold"
)

// addControllerFlags registers the flags that select controller variants.
// Unset flags fall back to the config file, environment and defaults.
func addControllerFlags(flags *pflag.FlagSet) {
	flags.String("auth", string(scaffold.AuthSuperuser), "Authorization mode for generated routes (superuser|user)")
	flags.Bool("conflict-check", false, "Reject creates whose natural key already exists with 409")
	flags.Bool("with-import", false, "Add a CSV import route that schedules bulk_upload")
	flags.Bool("with-export", false, "Add a CSV export route")
	flags.Int("per-page", 20, "Default page size of the list route (1-100)")
}

// addCRUDFlags registers the flags that select CRUD variants
func addCRUDFlags(flags *pflag.FlagSet) {
	flags.Bool("bulk-upload", true, "Generate the bulk_upload method")
}

// addNaturalKeyFlag registers the field used for slugs and conflict checks
func addNaturalKeyFlag(flags *pflag.FlagSet) {
	flags.String("natural-key", scaffold.DefaultNaturalKey, "Field used for slugs and duplicate detection")
}
