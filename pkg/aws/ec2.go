package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/ec2man/ec2man/internal/models"
)

// EC2Client struct for EC2 client
type EC2Client struct {
	api EC2API
}

// NewEC2Client creates a new EC2Client from the ambient AWS configuration
// (shared config files, environment, instance metadata). Credential setup
// is entirely the SDK's concern.
func NewEC2Client(ctx context.Context) (*EC2Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithEC2IMDSClientEnableState(imds.ClientEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &EC2Client{api: ec2.NewFromConfig(cfg)}, nil
}

// NewEC2ClientFromAPI creates an EC2Client around an existing API implementation.
func NewEC2ClientFromAPI(api EC2API) *EC2Client {
	return &EC2Client{api: api}
}

// ListInstances returns every instance visible to the caller, across all
// reservations, in the order the service returned them.
func (c *EC2Client) ListInstances(ctx context.Context) ([]models.Instance, error) {
	result, err := c.api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("error querying EC2 instances: %w", err)
	}

	return instancesFromReservations(result.Reservations), nil
}

// StartInstance starts the given instance. With dryRun set the service only
// verifies that the caller holds the required permissions.
func (c *EC2Client) StartInstance(ctx context.Context, instanceID string, dryRun bool) error {
	input := &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(dryRun),
	}

	_, err := c.api.StartInstances(ctx, input)
	return err
}

// StopInstance stops the given instance. With dryRun set the service only
// verifies that the caller holds the required permissions.
func (c *EC2Client) StopInstance(ctx context.Context, instanceID string, dryRun bool) error {
	input := &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(dryRun),
	}

	_, err := c.api.StopInstances(ctx, input)
	return err
}
