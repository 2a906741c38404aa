package services

import (
	"encoding/json"
	"log"

	"stayhub/dto"

	"github.com/olahol/melody"
)

// StatsMessage is the websocket frame pushed to dashboard clients
type StatsMessage struct {
	Type string             `json:"type"`
	Data dto.DashboardStats `json:"data"`
}

// BroadcastStats pushes refreshed dashboard stats to every connected
// dashboard client
func BroadcastStats(m *melody.Melody, stats dto.DashboardStats) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(StatsMessage{Type: "stats", Data: stats})
	if err != nil {
		log.Printf("Failed to encode stats broadcast: %v", err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		log.Printf("Failed to broadcast stats: %v", err)
	}
}
