package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ec2man/ec2man/internal/models"
	"github.com/ec2man/ec2man/pkg/utils"
)

// missingValue is shown for public addressing fields EC2 omits on
// instances without public connectivity.
const missingValue = "NONE"

// instancesFromReservations flattens a DescribeInstances response into
// Instance records, preserving the order the service returned them in.
func instancesFromReservations(reservations []types.Reservation) []models.Instance {
	instances := []models.Instance{}

	for _, reservation := range reservations {
		for _, instance := range reservation.Instances {
			instances = append(instances, newInstance(instance))
		}
	}

	return instances
}

// newInstance maps one API instance onto the local record. Only the two
// public addressing fields get a fallback; everything else passes through
// as-is.
func newInstance(instance types.Instance) models.Instance {
	record := models.Instance{
		InstanceID:   utils.SafeDeref(instance.InstanceId),
		ImageID:      utils.SafeDeref(instance.ImageId),
		InstanceType: string(instance.InstanceType),
		LaunchTime:   aws.ToTime(instance.LaunchTime),
		PrivateDNS:   utils.SafeDeref(instance.PrivateDnsName),
		PublicDNS:    utils.StringOrDefault(instance.PublicDnsName, missingValue),
		PrivateIP:    utils.SafeDeref(instance.PrivateIpAddress),
		PublicIP:     utils.StringOrDefault(instance.PublicIpAddress, missingValue),
		SubnetID:     utils.SafeDeref(instance.SubnetId),
		VpcID:        utils.SafeDeref(instance.VpcId),
		Tags:         tagsFromAPI(instance.Tags),
	}

	if instance.Placement != nil {
		record.AvailabilityZone = utils.SafeDeref(instance.Placement.AvailabilityZone)
	}
	if instance.State != nil {
		record.State = string(instance.State.Name)
	}

	return record
}

func tagsFromAPI(tags []types.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}

	out := make([]models.Tag, 0, len(tags))
	for _, tag := range tags {
		out = append(out, models.Tag{
			Key:   utils.SafeDeref(tag.Key),
			Value: utils.SafeDeref(tag.Value),
		})
	}

	return out
}
