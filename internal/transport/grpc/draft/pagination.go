package draft

import (
	"fmt"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// Page tokens are plain offsets into the id-ordered draft list.
func encodePageToken(offset int) string {
	if offset <= 0 {
		return ""
	}
	return strconv.Itoa(offset)
}

func decodePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}
	if offset < 0 {
		return 0, fmt.Errorf("negative offset %d", offset)
	}
	return offset, nil
}
