package iam

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/relloyd/dwhpipe/helper"
)

// Role is an IAM role that the warehouse assumes to read the bulk-load sources.
type Role struct {
	ARN       string
	Partition string
	AccountID string
	Name      string
}

// InvalidRoleError is returned when a value cannot be used as an IAM role ARN.
type InvalidRoleError struct {
	Value  string
	Reason string
}

func (e InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid IAM role ARN %q: %v", helper.Redact(e.Value, 12, constants.RedactedText), e.Reason)
}

// ParseRole validates s as an IAM role ARN of the form arn:<partition>:iam::<account>:role/<name>.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Role{}, InvalidRoleError{Value: s, Reason: "value is empty"}
	}
	a, err := arn.Parse(s)
	if err != nil {
		return Role{}, InvalidRoleError{Value: s, Reason: err.Error()}
	}
	if a.Service != constants.IAMServiceName {
		return Role{}, InvalidRoleError{Value: s, Reason: fmt.Sprintf("expected service %q but got %q", constants.IAMServiceName, a.Service)}
	}
	if a.AccountID == "" {
		return Role{}, InvalidRoleError{Value: s, Reason: "missing account id"}
	}
	if !strings.HasPrefix(a.Resource, constants.IAMRoleResourcePrefix) {
		return Role{}, InvalidRoleError{Value: s, Reason: fmt.Sprintf("expected resource to start with %q", constants.IAMRoleResourcePrefix)}
	}
	name := a.Resource[strings.LastIndex(a.Resource, "/")+1:]
	if name == "" {
		return Role{}, InvalidRoleError{Value: s, Reason: "missing role name"}
	}
	return Role{ARN: s, Partition: a.Partition, AccountID: a.AccountID, Name: name}, nil
}

// String redacts the account id so the role can be logged.
func (r Role) String() string {
	return fmt.Sprintf("arn:%v:iam::%v:role/%v", r.Partition, constants.RedactedText, r.Name)
}
