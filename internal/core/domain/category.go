package domain

// AdCategory is a marketplace-wide ad category maintained by admins.
type AdCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	CreateTime   string `json:"createTime"`
}
