package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// StatsRefresher recomputes the dashboard aggregates and pushes them to
// connected clients
type StatsRefresher interface {
	RefreshStats(m *melody.Melody) error
}

var statsRefresher StatsRefresher

// SetStatsRefresher sets the implementation the nightly job calls
func SetStatsRefresher(refresher StatsRefresher) {
	statsRefresher = refresher
}

// InitCronJobs registers the scheduled jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Runs at midnight so todayReservations rolls over with the date
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Running nightly stats refresh at: %v", time.Now())
		if statsRefresher == nil {
			log.Printf("Error: StatsRefresher has not been set")
			return
		}
		if err := statsRefresher.RefreshStats(m); err != nil {
			log.Printf("Error refreshing dashboard stats: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
