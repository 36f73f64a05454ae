package payments

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// ValidateLinkSlug checks a payment-link slug. Slugs end up in URLs, so
// they follow the DNS label rules: lowercase alphanumerics and '-', at most
// 63 characters.
func ValidateLinkSlug(slug string) error {
	if errs := validation.IsDNS1123Label(slug); len(errs) > 0 {
		return fmt.Errorf("invalid link %q: %s", slug, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateHandle checks a contact handle.
func ValidateHandle(handle string) error {
	if errs := validation.IsDNS1123Label(strings.ToLower(handle)); len(errs) > 0 {
		return fmt.Errorf("invalid handle %q: %s", handle, strings.Join(errs, "; "))
	}
	return nil
}
