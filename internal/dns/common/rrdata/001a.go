package rrdata

import "fmt"

// interpretAData renders a 4-byte A record RDATA as dotted-decimal IPv4.
func interpretAData(b []byte) (string, error) {
	if len(b) != 4 {
		return "", fmt.Errorf("invalid A record length: %d", len(b))
	}
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3]), nil
}
