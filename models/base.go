package models

import (
	"Giftspin/pkg/snowflake"
)

func nextID(id *int64) {
	if *id == 0 {
		*id = snowflake.GenID()
	}
}

// All lists every table owned by the service, in dependency order.
func All() []any {
	return []any{
		&User{},
		&Wallet{},
		&Stats{},
		&Streak{},
		&Purchase{},
		&Reward{},
		&SpinLimit{},
	}
}
