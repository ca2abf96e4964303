package theaters

import "strings"

func isInvalidID(err error) bool {
	return err != nil && strings.Contains(err.Error(), "invalid theater ID")
}
