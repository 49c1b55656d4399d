package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ec2man/ec2man/internal/models"
)

const (
	// labelFormat indents each detail line and left-pads the label so
	// every value starts in the same column.
	labelFormat = "  %-13s%s\n"

	divider = "~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~"

	launchTimeFormat = "2006-01-02 15:04:05"
)

// PrintListHeader writes the banner shown above the instance summaries.
func PrintListHeader(writer io.Writer) {
	fmt.Fprintf(writer, "Instances found in your AWS account:\n\n")
}

// PrintInstanceSummary writes one instance block. The instance id and the
// divider always print; quiet drops the basic detail lines and verbose adds
// the extended ones. The two flags gate their lines independently, so
// verbose lines still print when quiet is also set.
func PrintInstanceSummary(writer io.Writer, instance models.Instance, verbose bool, quiet bool) {
	fmt.Fprintln(writer, instance.InstanceID)
	fmt.Fprintln(writer, divider)

	if verbose {
		fmt.Fprintf(writer, labelFormat, "AMI:", instance.ImageID)
	}
	if !quiet {
		fmt.Fprintf(writer, labelFormat, "Type:", instance.InstanceType)
	}
	if verbose {
		fmt.Fprintf(writer, labelFormat, "Launched:", FormatLaunchTime(instance.LaunchTime))
		fmt.Fprintf(writer, labelFormat, "AZ:", instance.AvailabilityZone)
		fmt.Fprintf(writer, labelFormat, "Private DNS:", instance.PrivateDNS)
		fmt.Fprintf(writer, labelFormat, "Public DNS:", instance.PublicDNS)
	}
	if !quiet {
		fmt.Fprintf(writer, labelFormat, "Private IP:", instance.PrivateIP)
		fmt.Fprintf(writer, labelFormat, "Public IP:", instance.PublicIP)
	}
	if verbose {
		fmt.Fprintf(writer, labelFormat, "Subnet Id:", instance.SubnetID)
		fmt.Fprintf(writer, labelFormat, "VPC Id:", instance.VpcID)
	}
	if !quiet {
		fmt.Fprintf(writer, labelFormat, "State:", instance.State)
	}
	if verbose {
		fmt.Fprintf(writer, labelFormat, "Tags:", FormatTags(instance.Tags))
	}

	fmt.Fprintln(writer)
}

// FormatLaunchTime renders a launch time with a relative suffix,
// e.g. "2024-11-05 09:30:00 (9 months ago)". Zero times render empty.
func FormatLaunchTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return fmt.Sprintf("%s (%s)", t.Format(launchTimeFormat), humanize.Time(t))
}

// FormatTags joins tags as comma separated Key=Value pairs.
func FormatTags(tags []models.Tag) string {
	if len(tags) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(tags))
	for _, tag := range tags {
		pairs = append(pairs, fmt.Sprintf("%s=%s", tag.Key, tag.Value))
	}

	return strings.Join(pairs, ", ")
}
