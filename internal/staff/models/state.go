package models

import (
	"fmt"
	"strings"

	e "github.com/gartstein/staff/internal/staff/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// USState represents one of the 50 US states.
// The zero value means the state is unset.
type USState string

const (
	Alabama       USState = "ALABAMA"
	Alaska        USState = "ALASKA"
	Arizona       USState = "ARIZONA"
	Arkansas      USState = "ARKANSAS"
	California    USState = "CALIFORNIA"
	Colorado      USState = "COLORADO"
	Connecticut   USState = "CONNECTICUT"
	Delaware      USState = "DELAWARE"
	Florida       USState = "FLORIDA"
	Georgia       USState = "GEORGIA"
	Hawaii        USState = "HAWAII"
	Idaho         USState = "IDAHO"
	Illinois      USState = "ILLINOIS"
	Indiana       USState = "INDIANA"
	Iowa          USState = "IOWA"
	Kansas        USState = "KANSAS"
	Kentucky      USState = "KENTUCKY"
	Louisiana     USState = "LOUISIANA"
	Maine         USState = "MAINE"
	Maryland      USState = "MARYLAND"
	Massachusetts USState = "MASSACHUSETTS"
	Michigan      USState = "MICHIGAN"
	Minnesota     USState = "MINNESOTA"
	Mississippi   USState = "MISSISSIPPI"
	Missouri      USState = "MISSOURI"
	Montana       USState = "MONTANA"
	Nebraska      USState = "NEBRASKA"
	Nevada        USState = "NEVADA"
	NewHampshire  USState = "NEW_HAMPSHIRE"
	NewJersey     USState = "NEW_JERSEY"
	NewMexico     USState = "NEW_MEXICO"
	NewYork       USState = "NEW_YORK"
	NorthCarolina USState = "NORTH_CAROLINA"
	NorthDakota   USState = "NORTH_DAKOTA"
	Ohio          USState = "OHIO"
	Oklahoma      USState = "OKLAHOMA"
	Oregon        USState = "OREGON"
	Pennsylvania  USState = "PENNSYLVANIA"
	RhodeIsland   USState = "RHODE_ISLAND"
	SouthCarolina USState = "SOUTH_CAROLINA"
	SouthDakota   USState = "SOUTH_DAKOTA"
	Tennessee     USState = "TENNESSEE"
	Texas         USState = "TEXAS"
	Utah          USState = "UTAH"
	Vermont       USState = "VERMONT"
	Virginia      USState = "VIRGINIA"
	Washington    USState = "WASHINGTON"
	WestVirginia  USState = "WEST_VIRGINIA"
	Wisconsin     USState = "WISCONSIN"
	Wyoming       USState = "WYOMING"
)

var stateAbbreviations = map[USState]string{
	Alabama:       "AL",
	Alaska:        "AK",
	Arizona:       "AZ",
	Arkansas:      "AR",
	California:    "CA",
	Colorado:      "CO",
	Connecticut:   "CT",
	Delaware:      "DE",
	Florida:       "FL",
	Georgia:       "GA",
	Hawaii:        "HI",
	Idaho:         "ID",
	Illinois:      "IL",
	Indiana:       "IN",
	Iowa:          "IA",
	Kansas:        "KS",
	Kentucky:      "KY",
	Louisiana:     "LA",
	Maine:         "ME",
	Maryland:      "MD",
	Massachusetts: "MA",
	Michigan:      "MI",
	Minnesota:     "MN",
	Mississippi:   "MS",
	Missouri:      "MO",
	Montana:       "MT",
	Nebraska:      "NE",
	Nevada:        "NV",
	NewHampshire:  "NH",
	NewJersey:     "NJ",
	NewMexico:     "NM",
	NewYork:       "NY",
	NorthCarolina: "NC",
	NorthDakota:   "ND",
	Ohio:          "OH",
	Oklahoma:      "OK",
	Oregon:        "OR",
	Pennsylvania:  "PA",
	RhodeIsland:   "RI",
	SouthCarolina: "SC",
	SouthDakota:   "SD",
	Tennessee:     "TN",
	Texas:         "TX",
	Utah:          "UT",
	Vermont:       "VT",
	Virginia:      "VA",
	Washington:    "WA",
	WestVirginia:  "WV",
	Wisconsin:     "WI",
	Wyoming:       "WY",
}

var statesByAbbreviation = lo.Invert(stateAbbreviations)

// Abbreviation returns the two-letter postal code of the state,
// or an empty string when the state is unset or unknown.
func (s USState) Abbreviation() string {
	return stateAbbreviations[s]
}

// IsValid reports whether s is one of the 50 states.
func (s USState) IsValid() bool {
	_, ok := stateAbbreviations[s]
	return ok
}

// ParseUSState resolves a state from its enum name ("NEW_YORK") or its
// abbreviation ("NY"), ignoring case. Empty input yields the unset state.
func ParseUSState(s string) (USState, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	if state := USState(s); state.IsValid() {
		return state, nil
	}
	if state, ok := statesByAbbreviation[s]; ok {
		return state, nil
	}
	return "", fmt.Errorf("%w: unknown state %q", e.ErrInvalidArgument, s)
}

// UnmarshalYAML accepts either the enum name or the abbreviation.
func (s *USState) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	state, err := ParseUSState(raw)
	if err != nil {
		return err
	}
	*s = state
	return nil
}
