package disk_test

import "fmt"

func fmtVerbose(err error) string {
	return fmt.Sprintf("%+v", err)
}
