package domain

import "github.com/adspace/adspace-cli/pkg/enum"

// Enum declarations mirror the backend's compact numeric codes.
var (
	AdType = enum.Declare(
		enum.Variant{Name: "image", Value: 0, Label: "Image"},
		enum.Variant{Name: "video", Value: 1, Label: "Video"},
	)

	AdLayout = enum.Declare(
		enum.Variant{Name: "banner", Value: 0, Label: "Banner"},
		enum.Variant{Name: "sidebar", Value: 1, Label: "Sidebar"},
		enum.Variant{Name: "card", Value: 2, Label: "Card"},
	)

	ReviewStatus = enum.Declare(
		enum.Variant{Name: "pending", Value: 0, Label: "Pending review", Category: enum.Warning},
		enum.Variant{Name: "approved", Value: 1, Label: "Approved", Category: enum.Success},
		enum.Variant{Name: "rejected", Value: 2, Label: "Rejected", Category: enum.Danger},
	)
)

const (
	ReviewPending  = 0
	ReviewApproved = 1
	ReviewRejected = 2
)

// Ad is a creative owned by an advertiser.
type Ad struct {
	AdID         string  `json:"adId"`
	Title        string  `json:"title"`
	AdType       int     `json:"adType"`
	MediaURL     string  `json:"mediaUrl"`
	LandingPage  string  `json:"landingPage"`
	CategoryID   string  `json:"categoryId"`
	AdLayout     int     `json:"adLayout"`
	WeeklyBudget float64 `json:"weeklyBudget"`
	ReviewStatus int     `json:"reviewStatus"`
	IsActive     int     `json:"isActive"`
	CreateTime   string  `json:"createTime"`
	EditTime     string  `json:"editTime"`
}

// AdMeta carries the advertiser-editable subset of an Ad.
type AdMeta struct {
	Title        string  `json:"title"`
	AdType       int     `json:"adType"`
	MediaURL     string  `json:"mediaUrl"`
	LandingPage  string  `json:"landingPage"`
	CategoryID   string  `json:"categoryId"`
	AdLayout     int     `json:"adLayout"`
	WeeklyBudget float64 `json:"weeklyBudget"`
}
