package dbmodels

// Campaign is the live campaign record. Summary and TagLine are promoted from the dashboard summary section.
type Campaign struct {
	BaseModel
	Slug     string  `gorm:"type:varchar(255);uniqueIndex"`
	Name     string  `gorm:"type:varchar(255)"`
	IssuerID *string `gorm:"type:varchar(36)"`
	Issuer   *Issuer `gorm:"foreignKey:IssuerID"`
	Summary  string
	TagLine  string `gorm:"type:varchar(512)"`
}

type Issuer struct {
	BaseModel
	Name      string `gorm:"type:varchar(255)"`
	Website   string
	LinkedIn  string
	Facebook  string
	Twitter   string
	Instagram string
	Youtube   string
}

// CampaignInfo is the canonical campaign info published on the campaign page.
type CampaignInfo struct {
	BaseModel
	CampaignID    string `gorm:"type:varchar(36);uniqueIndex"`
	Milestones    string
	InvestorPitch string
	PitchVideoURL string
}

type Owner struct {
	BaseModel
	CampaignID string `gorm:"type:varchar(36);index"`
	FullName   string `gorm:"type:varchar(255)"`
	Title      string `gorm:"type:varchar(255)"`
	Bio        string
	LinkedIn   string
	Email      string `gorm:"type:varchar(255)"`
}
