package enums

import "fmt"

// ActivityType enumerates the tracked user actions.
type ActivityType string

const (
	ActivityTypeLogin              ActivityType = "login"
	ActivityTypeLogout             ActivityType = "logout"
	ActivityTypeProductView        ActivityType = "product_view"
	ActivityTypeAddToCart          ActivityType = "add_to_cart"
	ActivityTypeRemoveFromCart     ActivityType = "remove_from_cart"
	ActivityTypeAddToWishlist      ActivityType = "add_to_wishlist"
	ActivityTypeRemoveFromWishlist ActivityType = "remove_from_wishlist"
	ActivityTypePurchase           ActivityType = "purchase"
	ActivityTypeSearch             ActivityType = "search"
	ActivityTypeCategoryBrowse     ActivityType = "category_browse"
)

var validActivityTypes = []ActivityType{
	ActivityTypeLogin,
	ActivityTypeLogout,
	ActivityTypeProductView,
	ActivityTypeAddToCart,
	ActivityTypeRemoveFromCart,
	ActivityTypeAddToWishlist,
	ActivityTypeRemoveFromWishlist,
	ActivityTypePurchase,
	ActivityTypeSearch,
	ActivityTypeCategoryBrowse,
}

// String implements fmt.Stringer.
func (a ActivityType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known ActivityType.
func (a ActivityType) IsValid() bool {
	for _, candidate := range validActivityTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseActivityType converts raw input into an ActivityType.
func ParseActivityType(value string) (ActivityType, error) {
	for _, candidate := range validActivityTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity type %q", value)
}
