package convert

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Built-in profile names.
const (
	ProfileOrders        = "orders"
	ProfileSubscriptions = "subscriptions"
)

// DefaultOriginalsDir is where vendor exports are expected by default.
const DefaultOriginalsDir = "Original Email"

// Profile describes one family of legacy emails: where the originals live,
// which files belong to it, and how a source file name maps to a template
// name.
type Profile struct {
	Name string

	// SourceDir is read non-recursively.
	SourceDir string

	// TargetDir is relative to the output storage root.
	TargetDir string

	// Match selects source file names.
	Match func(filename string) bool

	// TemplateName derives the output name, without extension.
	TemplateName func(filename string) string

	// PreviewPattern is a glob of built templates, shown in next steps.
	PreviewPattern string
}

// OrdersProfile converts Order_*.html status emails into lower-cased,
// dash-separated templates at the root of the templates directory.
func OrdersProfile(originalsDir string) Profile {
	return Profile{
		Name:      ProfileOrders,
		SourceDir: originalsDir,
		TargetDir: "",
		Match: func(filename string) bool {
			return strings.HasPrefix(filename, "Order_") && strings.HasSuffix(filename, ".html")
		},
		TemplateName: func(filename string) string {
			return cases.Lower(language.Und).String(dashed(filename))
		},
		PreviewPattern: "order-*.html",
	}
}

// SubscriptionsProfile converts every *.html file of the subscriptions
// export into dash-separated templates under subscriptions/. Case is kept.
func SubscriptionsProfile(originalsDir string) Profile {
	return Profile{
		Name:      ProfileSubscriptions,
		SourceDir: filepath.Join(originalsDir, "subscriptions"),
		TargetDir: "subscriptions",
		Match: func(filename string) bool {
			return strings.HasSuffix(filename, ".html")
		},
		TemplateName:   dashed,
		PreviewPattern: "subscription-*.html",
	}
}

// ProfileByName returns a built-in profile rooted at originalsDir.
func ProfileByName(name, originalsDir string) (Profile, error) {
	switch name {
	case ProfileOrders:
		return OrdersProfile(originalsDir), nil
	case ProfileSubscriptions:
		return SubscriptionsProfile(originalsDir), nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}

// OutputPath is the storage path for a source file.
func (p Profile) OutputPath(filename string) string {
	return path.Join(p.TargetDir, p.TemplateName(filename)+".html")
}

// NextSteps lists the follow-up commands printed after a conversion.
// distDir is where the build step writes its output.
func (p Profile) NextSteps(distDir string) []string {
	out := path.Join(distDir, p.TargetDir)
	return []string{
		"Run: mailtpl build",
		"Review templates in " + out + "/",
		"Test with: mailtpl preview " + path.Join(out, p.PreviewPattern),
	}
}

func dashed(filename string) string {
	return strings.ReplaceAll(strings.TrimSuffix(filename, ".html"), "_", "-")
}
