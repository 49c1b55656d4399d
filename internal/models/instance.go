package models

import "time"

// Instance represents one EC2 instance as returned by DescribeInstances
type Instance struct {
	InstanceID       string
	ImageID          string
	InstanceType     string
	LaunchTime       time.Time
	AvailabilityZone string
	PrivateDNS       string
	PublicDNS        string
	PrivateIP        string
	PublicIP         string
	SubnetID         string
	VpcID            string
	State            string
	Tags             []Tag
}

// Tag is one key/value pair attached to an instance
type Tag struct {
	Key   string
	Value string
}
