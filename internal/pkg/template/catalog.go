// Copyright The Sitestack Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

// Internal identifiers for the resources and parameters of the site stack.
const (
	paramDomain = "domain"

	ridBucket        = "site-bucket"
	ridBucketPolicy  = "bucket-policy"
	ridUser          = "site-user"
	ridAccessKey     = "site-user-access-key"
	ridDistribution  = "site-cdn"
	ridHostedZone    = "hosted-zone"
	ridZoneRecordSet = "zone-record-set"
)

const (
	indexDocument = "index.html"
	errorDocument = "error.html"

	// Fixed hosted zone id of the CloudFront service, required by Route 53
	// when an alias record targets a distribution.
	cloudFrontHostedZoneID = "Z2FDTNDATAQYW2"

	originID = "site-bucket-origin"
)

// bucket returns a public-read S3 bucket configured for website hosting.
func bucket() Resource {
	return Resource{
		Type: "AWS::S3::Bucket",
		Properties: map[string]interface{}{
			"access-control": "PublicRead",
			"website-configuration": map[string]interface{}{
				"index-document": indexDocument,
				"error-document": errorDocument,
			},
		},
	}
}

// bucketPolicy grants anonymous read access to every object in the bucket.
func bucketPolicy(bucketID string) Resource {
	return Resource{
		Type: "AWS::S3::BucketPolicy",
		Properties: map[string]interface{}{
			"bucket": RefTo(bucketID),
			"policy-document": map[string]interface{}{
				"version": "2012-10-17",
				"statement": []interface{}{
					map[string]interface{}{
						"sid":       "PublicReadForGetBucketObjects",
						"effect":    "Allow",
						"principal": "*",
						"action":    "s3:GetObject",
						"resource":  JoinOf("arn:aws:s3:::", RefTo(bucketID), "/*"),
					},
				},
			},
		},
	}
}

// userPolicy is an inline policy fragment granting full access to the bucket
// and its objects, and nothing else.
func userPolicy(bucketID string) map[string]interface{} {
	return map[string]interface{}{
		"policy-name": "site-bucket-full-access",
		"policy-document": map[string]interface{}{
			"version": "2012-10-17",
			"statement": []interface{}{
				map[string]interface{}{
					"effect": "Allow",
					"action": "s3:*",
					"resource": []interface{}{
						JoinOf("arn:aws:s3:::", RefTo(bucketID)),
						JoinOf("arn:aws:s3:::", RefTo(bucketID), "/*"),
					},
				},
			},
		},
	}
}

// user returns an IAM user carrying the given inline policy fragments.
func user(policies ...interface{}) Resource {
	return Resource{
		Type: "AWS::IAM::User",
		Properties: map[string]interface{}{
			"policies": policies,
		},
	}
}

// accessKey returns an active credential bound to the user.
func accessKey(userID string) Resource {
	return Resource{
		Type: "AWS::IAM::AccessKey",
		Properties: map[string]interface{}{
			"status":    "Active",
			"user-name": RefTo(userID),
		},
	}
}

// cdnDistribution returns a CloudFront distribution with the bucket's
// endpoint as a custom origin and the domain parameter as its only alias.
func cdnDistribution(domainID, bucketID string) Resource {
	return Resource{
		Type: "AWS::CloudFront::Distribution",
		Properties: map[string]interface{}{
			"distribution-config": map[string]interface{}{
				"enabled":             true,
				"default-root-object": indexDocument,
				"aliases":             []interface{}{RefTo(domainID)},
				"origins": []interface{}{
					map[string]interface{}{
						"id":          originID,
						"domain-name": AttOf(bucketID, "domain-name"),
						"custom-origin-config": map[string]interface{}{
							"origin-protocol-policy": "http-only",
						},
					},
				},
				"default-cache-behavior": map[string]interface{}{
					"target-origin-id":       originID,
					"viewer-protocol-policy": "allow-all",
					"forwarded-values": map[string]interface{}{
						"query-string": false,
					},
				},
			},
		},
	}
}

// hostedZone returns a Route 53 zone named after the domain parameter.
func hostedZone(domainID string) Resource {
	return Resource{
		Type: "AWS::Route53::HostedZone",
		Properties: map[string]interface{}{
			"name": RefTo(domainID),
			"hosted-zone-tags": []interface{}{
				map[string]interface{}{
					"key":   "project",
					"value": "sitestack",
				},
			},
		},
	}
}

// zoneRecordSet returns an "A" alias record pointing the domain at the
// distribution's generated domain name.
func zoneRecordSet(distributionID, hostedZoneID, domainID string) Resource {
	return Resource{
		Type: "AWS::Route53::RecordSet",
		Properties: map[string]interface{}{
			"hosted-zone-id": RefTo(hostedZoneID),
			"name":           JoinOf(RefTo(domainID), "."),
			"type":           "A",
			"alias-target": map[string]interface{}{
				"hosted-zone-id": cloudFrontHostedZoneID,
				"dns-name":       AttOf(distributionID, "domain-name"),
			},
		},
	}
}
