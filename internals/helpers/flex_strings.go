package helper

import "encoding/json"

// FlexStrings accepts either a single JSON string or an array of strings.
// Multi-valued reference fields historically arrive in both shapes.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '[' {
		var many []string
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*f = many
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	if one != "" {
		*f = FlexStrings{one}
	}
	return nil
}
