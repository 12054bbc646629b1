package terminal

import "encoding/json"

// Scheme is a named set of terminal color-role-to-color mappings, matching
// the shape of a Windows Terminal settings.json scheme entry. It is passed
// into the merge explicitly as an immutable value; nothing reads it from
// ambient state.
type Scheme struct {
	Name                string `json:"name"`
	Background          string `json:"background"`
	Foreground          string `json:"foreground"`
	CursorColor         string `json:"cursorColor"`
	SelectionBackground string `json:"selectionBackground"`
	Black               string `json:"black"`
	Red                 string `json:"red"`
	Green               string `json:"green"`
	Yellow              string `json:"yellow"`
	Blue                string `json:"blue"`
	Purple              string `json:"purple"`
	Cyan                string `json:"cyan"`
	White               string `json:"white"`
	BrightBlack         string `json:"brightBlack"`
	BrightRed           string `json:"brightRed"`
	BrightGreen         string `json:"brightGreen"`
	BrightYellow        string `json:"brightYellow"`
	BrightBlue          string `json:"brightBlue"`
	BrightPurple        string `json:"brightPurple"`
	BrightCyan          string `json:"brightCyan"`
	BrightWhite         string `json:"brightWhite"`
}

// DefaultScheme returns the coolnight scheme the tool ships with: a dark
// blue background with high-contrast neon accents, tuned for WSL shells.
func DefaultScheme() Scheme {
	return Scheme{
		Name:                "coolnight",
		Background:          "#010616",
		Foreground:          "#CBE0F0",
		CursorColor:         "#47FF9C",
		SelectionBackground: "#033259",
		Black:               "#05080D",
		Red:                 "#FF5575",
		Green:               "#47FF9C",
		Yellow:              "#FFE073",
		Blue:                "#00AAFF",
		Purple:              "#AA9CFC",
		Cyan:                "#52FFE0",
		White:               "#CBE0F0",
		BrightBlack:         "#0B3B61",
		BrightRed:           "#FF6E67",
		BrightGreen:         "#5AF78E",
		BrightYellow:        "#F4F99D",
		BrightBlue:          "#33B8FF",
		BrightPurple:        "#CAA9FA",
		BrightCyan:          "#9AEDFE",
		BrightWhite:         "#FFFFFF",
	}
}

// entry converts the scheme into the generic tree form used by the merge,
// so it serializes alongside the document's existing entries.
func (s Scheme) entry() (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
