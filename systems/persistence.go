package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const highScoreKey = "highscore"

// SavedHighScore represents the high score data stored on disk
type SavedHighScore struct {
	Best int `json:"best"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// bestScore is the best score seen this session, seeded from disk.
var bestScore int

// InitPersistence initializes the gdata manager for high score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "bullethell",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadHighScore loads the best score from disk and remembers it for the session.
func LoadHighScore() (int, error) {
	if !gdataInitialized || gdataManager == nil {
		return bestScore, nil
	}

	data, err := gdataManager.LoadItem(highScoreKey)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return bestScore, nil
	}
	if len(data) == 0 {
		return bestScore, nil
	}

	var saved SavedHighScore
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved high score: %v", err)
		return bestScore, err
	}

	if saved.Best > bestScore {
		bestScore = saved.Best
	}
	return bestScore, nil
}

// SaveHighScore saves the best score to disk
func SaveHighScore(best int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedHighScore{Best: best})
	if err != nil {
		log.Printf("Warning: Could not serialize high score: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(highScoreKey, data); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
		return err
	}
	return nil
}

// RecordScore compares score with the best so far, saving it when beaten.
// It returns the best score and whether score set a new record.
func RecordScore(score int) (int, bool) {
	if score <= bestScore {
		return bestScore, false
	}
	bestScore = score
	_ = SaveHighScore(bestScore)
	return bestScore, true
}

// BestScore returns the best score known this session.
func BestScore() int {
	return bestScore
}
