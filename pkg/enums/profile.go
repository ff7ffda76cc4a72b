package enums

import "fmt"

// ProfileVisibility controls who can see a user's profile.
type ProfileVisibility string

const (
	ProfileVisibilityPublic  ProfileVisibility = "public"
	ProfileVisibilityPrivate ProfileVisibility = "private"
	ProfileVisibilityFriends ProfileVisibility = "friends"
)

var validProfileVisibilities = []ProfileVisibility{
	ProfileVisibilityPublic,
	ProfileVisibilityPrivate,
	ProfileVisibilityFriends,
}

// String implements fmt.Stringer.
func (v ProfileVisibility) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ProfileVisibility.
func (v ProfileVisibility) IsValid() bool {
	for _, candidate := range validProfileVisibilities {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseProfileVisibility converts raw input into a ProfileVisibility.
func ParseProfileVisibility(value string) (ProfileVisibility, error) {
	for _, candidate := range validProfileVisibilities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid profile visibility %q", value)
}

// Gender holds the self-reported gender choice on an account.
type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderOther       Gender = "O"
	GenderUndisclosed Gender = "N"
)

var validGenders = []Gender{
	GenderMale,
	GenderFemale,
	GenderOther,
	GenderUndisclosed,
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	return string(g)
}

// IsValid reports whether the value is a known Gender.
func (g Gender) IsValid() bool {
	for _, candidate := range validGenders {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGender converts raw input into a Gender.
func ParseGender(value string) (Gender, error) {
	for _, candidate := range validGenders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gender %q", value)
}
