package preview

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogoURL   = "https://cdn.shopify.com/s/files/1/0685/5740/6360/files/directhomemedical-logo-color.png?v=1758148022"
	sampleImageURL   = "https://placehold.co/240x240/e7fed0/304535?text=CPAP+Machine"
	sampleLineTitle  = "CPAP Machine - DreamStation 2"
	sampleOrderPrice = "$299.99"
	sampleListPrice  = "$399.99"
)

// Samples maps the exact text of a placeholder tag to its preview value.
type Samples map[string]string

// ImageURLs holds optional hosted image locations, as exported to
// image_urls.json by the asset upload step.
type ImageURLs struct {
	StoreLogo string `yaml:"store_logo"`
}

// DefaultSamples returns the sample storefront order. now supplies the
// current year for the copyright tag.
func DefaultSamples(now time.Time, images ImageURLs) Samples {
	logo := images.StoreLogo
	if logo == "" {
		logo = defaultLogoURL
	}

	s := Samples{
		"{{shop.email_logo_url}}":              logo,
		"{{shop.url}}":                         "https://directhomemedical.com",
		"{{shop.domain}}":                      "directhomemedical.com",
		"{{shop.email}}":                       "support@directhomemedical.com",
		"{{shop.country}}":                     "United States",
		"{{email_title}}":                      "Test Email - DirectHomeMedical",
		"{{email_body}}":                       "Thank you for your subscription order! Your order has been confirmed.",
		"{{preview_text}}":                     "Testing email template in Mailtrap",
		"{{email_type}}":                       "test-email",
		"{{customer_url}}":                     "https://directhomemedical.com/account/orders",
		"{{ 'now' | date: '%Y' }}":             strconv.Itoa(now.Year()),
		"{{ name }}":                           "#1234",
		`{{ created_at | date: "%B %d, %Y" }}`: "January 15, 2025",
		"{{ line_item.quantity }}":             "1",
		"{{ original_item.title }}":            sampleLineTitle,
		"{{ line_title }}":                     sampleLineTitle,
		"{{ original_item.variant.title }}":    "Standard Size",
		"{{ shipping_address.name }}":          "John Smith",
		"{{ shipping_address.address1 }}":      "123 Main Street",
		"{{ shipping_address.city }}":          "Los Angeles",
		"{{ shipping_address.province_code }}": "CA",
		"{{ shipping_address.province }}":      "California",
		"{{ shipping_address.zip | upcase }}":  "90001",
		"{{ shipping_address.phone }}":         "(555) 123-4567",
		"{{ billing_address.name }}":           "John Smith",
		"{{ billing_address.address1 }}":       "123 Main Street",
		"{{ billing_address.city }}":           "Los Angeles",
		"{{ billing_address.province_code }}":  "CA",
		"{{ billing_address.province }}":       "California",
		"{{ billing_address.zip | upcase }}":   "90001",
		"{{ billing_address.phone }}":          "(555) 123-4567",
		"{{ adjusted_line_price | money }}":    sampleOrderPrice,
	}

	// Pricing and image filter chains exactly as they appear in the order templates.
	s["{{ original_item.image | image_url: width: 240, height: 240, crop: 'center' }}"] = sampleImageURL
	s["{{ original_item.final_line_price | divided_by: original_quantity | times: current_item.quantity | money }}"] = sampleOrderPrice
	s["{{ original_item.original_line_price | divided_by: original_quantity | times: current_item.quantity | money }}"] = sampleListPrice
	s["{{ original_item.variant.compare_at_price | times: current_item.quantity | money }}"] = sampleListPrice

	return s
}

// Merge returns a copy of s with the entries of other added or overriding.
func (s Samples) Merge(other Samples) Samples {
	out := make(Samples, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// keys returns the tags ordered longest first, ties broken lexically, so a
// tag is never partially consumed by a shorter one it contains.
func (s Samples) keys() []string {
	keys := slices.Collect(maps.Keys(s))
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return keys
}

// LoadSamples reads additional tag/value pairs from a YAML or JSON file.
func LoadSamples(path string) (Samples, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadSamples, err)
	}

	var s Samples
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, errors.Join(ErrFailedToParseSamples, err)
	}
	return s, nil
}

// LoadImageURLs reads image_urls.json. A missing file yields zero ImageURLs
// and no error since the file is optional.
func LoadImageURLs(path string) (ImageURLs, error) {
	var urls ImageURLs

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return urls, nil
		}
		return urls, fmt.Errorf("%w: %v", ErrFailedToReadSamples, err)
	}

	if err := yaml.Unmarshal(b, &urls); err != nil {
		return urls, errors.Join(ErrFailedToParseSamples, err)
	}
	return urls, nil
}
