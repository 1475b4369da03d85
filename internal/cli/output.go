package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Transaction:
		o.printTransaction(v)
	case Session:
		o.printSession(v)
	case SyncResult:
		o.printSyncResult(v)
	case SnapshotSummary:
		o.printSnapshotSummary(v)
	case []SnapshotSummary:
		for _, s := range v {
			o.printSnapshotSummary(s)
		}
	case []PlayerNet:
		o.printPlayerNets(v)
	case []LifetimeStat:
		o.printLifetimeStats(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Chips         int    `json:"chips"`
	TotalInvested int    `json:"total_invested"`
}

// Transaction response type
type Transaction struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	Type         string    `json:"type"`
	Amount       int       `json:"amount"`
	BalanceAfter int       `json:"balance_after"`
	Timestamp    time.Time `json:"timestamp"`
}

// Session response type
type Session struct {
	Players      []Player      `json:"players"`
	Transactions []Transaction `json:"transactions"`
	TotalPot     int           `json:"total_pot"`
}

// SyncResult response type
type SyncResult struct {
	Session  Session   `json:"session"`
	SyncedAt time.Time `json:"synced_at"`
}

// SnapshotSummary response type
type SnapshotSummary struct {
	ID       string    `json:"id"`
	Players  int       `json:"players"`
	TotalPot int       `json:"total_pot"`
	SavedAt  time.Time `json:"saved_at"`
}

// PlayerNet response type
type PlayerNet struct {
	PlayerName string  `json:"player_name"`
	NetValue   float64 `json:"net_value"`
}

// LifetimeStat response type
type LifetimeStat struct {
	PlayerName            string  `json:"player_name"`
	GamesPlayed           int     `json:"games_played"`
	TotalNetValueAllGames float64 `json:"total_net_value_all_games"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Chips: %d\n", p.Chips)
	fmt.Printf("Invested: %d\n", p.TotalInvested)
}

func (o *Output) printTransaction(t Transaction) {
	fmt.Printf("%s: %s %d (balance %d)\n", t.PlayerName, t.Type, t.Amount, t.BalanceAfter)
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Total Pot: %d\n", s.TotalPot)
	fmt.Printf("Players (%d):\n", len(s.Players))
	for _, p := range s.Players {
		fmt.Printf("  - %s: %d chips, %d invested (%s)\n", p.Name, p.Chips, p.TotalInvested, p.ID)
	}
	fmt.Printf("Transactions (%d):\n", len(s.Transactions))
	for _, t := range s.Transactions {
		fmt.Printf("  - %s %s %d -> %d\n", t.PlayerName, t.Type, t.Amount, t.BalanceAfter)
	}
}

func (o *Output) printSyncResult(r SyncResult) {
	fmt.Printf("Synced At: %s\n", r.SyncedAt.Format(time.RFC3339))
	o.printSession(r.Session)
}

func (o *Output) printSnapshotSummary(s SnapshotSummary) {
	fmt.Printf("%s  players=%d pot=%d saved=%s\n", s.ID, s.Players, s.TotalPot, s.SavedAt.Format(time.RFC3339))
}

func (o *Output) printPlayerNets(nets []PlayerNet) {
	for _, n := range nets {
		fmt.Printf("%-20s %+.0f\n", n.PlayerName, n.NetValue)
	}
}

func (o *Output) printLifetimeStats(rows []LifetimeStat) {
	for _, r := range rows {
		fmt.Printf("%-20s games=%d net=%+.0f\n", r.PlayerName, r.GamesPlayed, r.TotalNetValueAllGames)
	}
}
