package appstate

import "github.com/skillcoder/kbs-deployer/internal/infra/pinger"

type pingerStatsGetter interface {
	GetAllStats() map[string]*pinger.Statistics
}
