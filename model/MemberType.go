package model

// MemberType struct defines how a stored member type must be
type MemberType struct {
	Id              string `json:"id"`
	Discount        int64  `json:"discount"`
	MonthPostsLimit int64  `json:"monthPostsLimit"`
}
