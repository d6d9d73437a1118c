package domain

import "github.com/adspace/adspace-cli/pkg/enum"

var WebsiteVerification = enum.Declare(
	enum.Variant{Name: "unverified", Value: 0, Label: "Unverified", Category: enum.Warning},
	enum.Variant{Name: "verified", Value: 1, Label: "Verified", Category: enum.Success},
)

const (
	SiteUnverified = 0
	SiteVerified   = 1
)

// Website is a publisher-owned site that serves ads.
type Website struct {
	WebsiteID         string `json:"websiteId"`
	WebsiteName       string `json:"websiteName"`
	Domain            string `json:"domain"`
	IsVerified        int    `json:"isVerified"`
	VerificationToken string `json:"verificationToken"`
	VerifyTime        string `json:"verifyTime"`
	CreateTime        string `json:"createTime"`
}

// WebsiteMeta carries the publisher-editable subset of a Website.
type WebsiteMeta struct {
	WebsiteName string `json:"websiteName"`
	Domain      string `json:"domain"`
}
