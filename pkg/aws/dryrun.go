package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// dryRunErrorCode is what EC2 returns when a DryRun request would have
// succeeded. The SDK surfaces it as an error even though it means the
// caller holds the required permissions.
const dryRunErrorCode = "DryRunOperation"

// IsDryRunSuccess reports whether err is the DryRunOperation response,
// i.e. the permission check passed.
func IsDryRunSuccess(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == dryRunErrorCode
	}

	return false
}
