package model

// Profile struct defines how a stored profile must be
type Profile struct {
	Id           string `json:"id"`
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int64  `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeId string `json:"memberTypeId"`
	UserId       string `json:"userId"`
}

// CreateProfileBody defines the body when creating a new profile
type CreateProfileBody struct {
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int64  `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeId string `json:"memberTypeId"`
	UserId       string `json:"userId"`
}
