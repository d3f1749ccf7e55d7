package config

// Milestone 连续购买天数达到 Days 时发放 Amount 奖励
type Milestone struct {
	Days   int   `json:"days" yaml:"days"`
	Amount int64 `json:"amount" yaml:"amount"`
}

// WheelSegment 转盘的一个扇区. Weight 越大越容易被抽中.
type WheelSegment struct {
	Label  string `json:"label" yaml:"label"`
	Weight int    `json:"weight" yaml:"weight"`
	Color  string `json:"color" yaml:"color"`
}

type Loyalty struct {
	DollarsPerTicket    int64          `json:"dollars_per_ticket" yaml:"dollars_per_ticket"`
	MaxDailySpins       int            `json:"max_daily_spins" yaml:"max_daily_spins"`
	XpPerLevel          int64          `json:"xp_per_level" yaml:"xp_per_level"`
	InitialGrantDivisor int64          `json:"initial_grant_divisor" yaml:"initial_grant_divisor"`
	InitialGrantWindow  int            `json:"initial_grant_window" yaml:"initial_grant_window"`
	CouponSalt          string         `json:"coupon_salt" yaml:"coupon_salt"`
	CouponTTLDays       int            `json:"coupon_ttl_days" yaml:"coupon_ttl_days"`
	Milestones          []Milestone    `json:"milestones" yaml:"milestones"`
	Wheel               []WheelSegment `json:"wheel" yaml:"wheel"`
}

func DefaultMilestones() []Milestone {
	return []Milestone{
		{Days: 3, Amount: 5},
		{Days: 5, Amount: 10},
		{Days: 7, Amount: 20},
		{Days: 10, Amount: 30},
		{Days: 14, Amount: 50},
		{Days: 21, Amount: 75},
		{Days: 30, Amount: 100},
		{Days: 60, Amount: 200},
		{Days: 90, Amount: 300},
	}
}

func DefaultWheel() []WheelSegment {
	return []WheelSegment{
		{Label: "5% OFF", Weight: 15, Color: "#00ff00"},
		{Label: "10% OFF", Weight: 20, Color: "#1f2937"},
		{Label: "15% OFF", Weight: 10, Color: "#00ff00"},
		{Label: "$5 FREE", Weight: 15, Color: "#1f2937"},
		{Label: "20% OFF", Weight: 8, Color: "#00ff00"},
		{Label: "TRY AGAIN", Weight: 25, Color: "#1f2937"},
		{Label: "25% OFF", Weight: 5, Color: "#00ff00"},
		{Label: "$10 FREE", Weight: 2, Color: "#1f2937"},
		{Label: "TRY AGAIN", Weight: 14, Color: "#00ff00"},
		{Label: "15% OFF", Weight: 10, Color: "#1f2937"},
		{Label: "TRY AGAIN", Weight: 10, Color: "#00ff00"},
		{Label: "5% OFF", Weight: 10, Color: "#1f2937"},
	}
}

func (l *Loyalty) withDefaults() {
	if l.DollarsPerTicket <= 0 {
		l.DollarsPerTicket = 50
	}
	if l.MaxDailySpins <= 0 {
		l.MaxDailySpins = 3
	}
	if l.XpPerLevel <= 0 {
		l.XpPerLevel = 1000
	}
	if l.InitialGrantDivisor <= 0 {
		l.InitialGrantDivisor = 100
	}
	if l.InitialGrantWindow <= 0 {
		l.InitialGrantWindow = 10
	}
	if l.CouponSalt == "" {
		l.CouponSalt = "giftspin"
	}
	if l.CouponTTLDays <= 0 {
		l.CouponTTLDays = 30
	}
	if len(l.Milestones) == 0 {
		l.Milestones = DefaultMilestones()
	}
	if len(l.Wheel) == 0 {
		l.Wheel = DefaultWheel()
	}
}

func ProvideLoyaltyConfig(cfg *Config) *Loyalty {
	return cfg.Loyalty
}
