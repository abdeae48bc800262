// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

// Exported output keys, as internal tokens. Callers that read stack outputs
// convert wire-cased keys back to these with ToInternalKey.
const (
	OutputBucketName      = "bucket-name"
	OutputAccessKeyID     = "access-key-id"
	OutputSiteCDNURL      = "site-cdn-url"
	OutputSecretAccessKey = "secret-access-key"
	OutputWebsiteURL      = "website-url"
	OutputHostedZoneID    = "hosted-zone-id"
)

// ParamDomain is the name of the template's single parameter.
const ParamDomain = paramDomain

// Compose builds the site stack template for the given configuration.
// It is a pure function: the same configuration always yields a structurally
// identical template.
func Compose(cfg Config) *Template {
	t := &Template{
		Description: "Static website: S3 origin, CloudFront distribution, IAM publish credentials.",
		Parameters: map[string]Parameter{
			paramDomain: {Type: "String"},
		},
		Resources: map[string]Resource{
			ridBucket:       bucket(),
			ridBucketPolicy: bucketPolicy(ridBucket),
			ridUser:         user(userPolicy(ridBucket)),
			ridAccessKey:    accessKey(ridUser),
			ridDistribution: cdnDistribution(paramDomain, ridBucket),
		},
		Outputs: map[string]Output{
			OutputBucketName: {
				Value:       RefTo(ridBucket),
				Description: "Name of the S3 bucket holding the website content.",
			},
			OutputAccessKeyID: {
				Value:       RefTo(ridAccessKey),
				Description: "Access key id for publishing site content.",
			},
			OutputSiteCDNURL: {
				Value:       AttOf(ridDistribution, "domain-name"),
				Description: "CloudFront domain name serving the site.",
			},
			OutputSecretAccessKey: {
				Value:       AttOf(ridAccessKey, "secret-access-key"),
				Description: "Secret access key for publishing site content.",
			},
		},
	}
	if cfg.DNSEnabled {
		mergeDNSExtension(t)
	}
	return t
}

// mergeDNSExtension adds the hosted zone, the alias record, and the outputs
// that reference them as a single step, so that the template never contains
// an output whose target is missing.
func mergeDNSExtension(t *Template) {
	t.Resources[ridHostedZone] = hostedZone(paramDomain)
	t.Resources[ridZoneRecordSet] = zoneRecordSet(ridDistribution, ridHostedZone, paramDomain)
	t.Outputs[OutputWebsiteURL] = Output{
		Value:       JoinOf("http://", RefTo(ridZoneRecordSet)),
		Description: "URL of the website on the custom domain.",
	}
	t.Outputs[OutputHostedZoneID] = Output{
		Value:       RefTo(ridHostedZone),
		Description: "Id of the hosted zone; point the domain's name servers here.",
	}
}
