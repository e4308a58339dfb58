package rooms

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shivaram19/gorbagana-plinko/internal/common/clock"
)

// DeadlineKey is the sorted set of rooms waiting for their ball drop,
// scored by unix deadline.
const DeadlineKey = "betting_deadlines"

// Dropper closes betting on a room and drops its ball.
type Dropper interface {
	DropBall(ctx context.Context, roomID string) (*DropResult, error)
}

// StartBettingWorker polls DeadlineKey and drops the ball in every room whose
// betting window has passed.
func StartBettingWorker(ctx context.Context, rdb *redis.Client, dropper Dropper, c clock.Clock, interval time.Duration) {
	if rdb == nil || dropper == nil {
		log.Println("[BETTING] Redis or room manager missing; betting worker not started")
		return
	}
	if c == nil {
		c = clock.DefaultClock{}
	}
	if interval <= 0 {
		interval = time.Second
	}

	log.Println("[BETTING] Betting worker started")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[BETTING] Betting worker stopping")
				return
			case <-ticker.C:
				ProcessDueDrops(ctx, rdb, dropper, c.Now())
			}
		}
	}()
}

// ProcessDueDrops drops every room whose deadline is at or before now and
// returns how many drops succeeded. A member is claimed with ZREM first, so
// concurrent workers never drop the same room twice.
func ProcessDueDrops(ctx context.Context, rdb *redis.Client, dropper Dropper, now time.Time) int {
	members, err := rdb.ZRangeByScore(ctx, DeadlineKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix(), 10),
	}).Result()
	if err != nil {
		log.Printf("[BETTING] Failed to fetch due rooms: %v", err)
		return 0
	}

	dropped := 0
	for _, roomID := range members {
		removed, err := rdb.ZRem(ctx, DeadlineKey, roomID).Result()
		if err != nil || removed == 0 {
			continue
		}
		res, err := dropper.DropBall(ctx, roomID)
		if err != nil {
			if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrWrongState) {
				log.Printf("[BETTING] Skipping stale deadline for room %s: %v", roomID, err)
			} else {
				log.Printf("[BETTING] Drop failed for room %s: %v", roomID, err)
			}
			continue
		}
		dropped++
		log.Printf("[BETTING] Room %s dropped: slot %d", roomID, res.Round.WinningSlot)
	}
	return dropped
}
