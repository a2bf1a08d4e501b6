package coordinator

import (
	"context"

	"coupon-issuance/internal/domain/pending"
	"coupon-issuance/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	issuedKeyPrefix = "coupon:issued:"
	queueKeyPrefix  = "coupon:queue:"
	queueRegistry   = "coupon:queues"
)

// The whole check-add-recheck-enqueue sequence runs server-side as one script
// so no interleaving between concurrent admits is observable. The post-SADD
// re-check mirrors the script's own invariant; with EVAL it cannot fire, but
// it keeps the script safe if the primitive is ever split.
var admitScript = redis.NewScript(`
local issued = KEYS[1]
local queue = KEYS[2]
local registry = KEYS[3]
local user = ARGV[1]
local max = tonumber(ARGV[2])
local entry = ARGV[3]
local campaign = ARGV[4]

if redis.call("SISMEMBER", issued, user) == 1 then
  return "DUPLICATE"
end
if redis.call("SCARD", issued) >= max then
  return "EXHAUSTED"
end
redis.call("SADD", issued, user)
if redis.call("SCARD", issued) > max then
  redis.call("SREM", issued, user)
  return "EXHAUSTED"
end
if entry ~= "" then
  redis.call("RPUSH", queue, entry)
  redis.call("SADD", registry, campaign)
end
return "GRANTED"
`)

// Pop and deregistration must be one atomic step. Checking the depth
// client-side races a concurrent admit: LLEN sees 0, the admit script
// RPUSHes (its registry SADD is a no-op, the campaign is still registered),
// then SREM strands the queued grant with no registration, so no later run
// would ever drain it.
var drainScript = redis.NewScript(`
local queue = KEYS[1]
local registry = KEYS[2]
local count = tonumber(ARGV[1])
local campaign = ARGV[2]

local entries = redis.call("LPOP", queue, count)
if redis.call("LLEN", queue) == 0 then
  redis.call("SREM", registry, campaign)
end
if entries == false then
  return {}
end
return entries
`)

type RedisCoordinator struct {
	rdb *redis.Client
}

func NewRedisCoordinator(rdb *redis.Client) Coordinator {
	return &RedisCoordinator{rdb: rdb}
}

func (c *RedisCoordinator) Admit(ctx context.Context, campaignID, userID uuid.UUID, maxUnits int, enqueue bool) (AdmitStatus, error) {
	entry := ""
	if enqueue {
		entry = pending.Grant{CampaignID: campaignID, UserID: userID}.Encode()
	}

	keys := []string{
		issuedKeyPrefix + campaignID.String(),
		queueKeyPrefix + campaignID.String(),
		queueRegistry,
	}
	args := []interface{}{userID.String(), maxUnits, entry, campaignID.String()}

	result, err := admitScript.Run(ctx, c.rdb, keys, args...).Text()
	if err != nil {
		return 0, errs.Wrap(err, "admit script failed")
	}

	switch result {
	case "GRANTED":
		return AdmitGranted, nil
	case "DUPLICATE":
		return AdmitDuplicate, nil
	case "EXHAUSTED":
		return AdmitExhausted, nil
	default:
		return 0, errs.New("admit script returned unknown status: " + result)
	}
}

func (c *RedisCoordinator) Count(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	count, err := c.rdb.SCard(ctx, issuedKeyPrefix+campaignID.String()).Result()
	if err != nil {
		return 0, errs.Wrap(err, "failed to count issued set")
	}
	return count, nil
}

func (c *RedisCoordinator) Reset(ctx context.Context, campaignID uuid.UUID) error {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, issuedKeyPrefix+campaignID.String())
	pipe.Del(ctx, queueKeyPrefix+campaignID.String())
	pipe.SRem(ctx, queueRegistry, campaignID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to reset coordinator state")
	}
	return nil
}

func (c *RedisCoordinator) DrainQueue(ctx context.Context, max int) ([]string, error) {
	if max <= 0 {
		return nil, nil
	}

	campaigns, err := c.rdb.SMembers(ctx, queueRegistry).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to list queued campaigns")
	}

	var entries []string
	for _, campaign := range campaigns {
		remaining := max - len(entries)
		if remaining <= 0 {
			break
		}

		keys := []string{queueKeyPrefix + campaign, queueRegistry}
		popped, err := drainScript.Run(ctx, c.rdb, keys, remaining, campaign).StringSlice()
		if err != nil {
			return entries, errs.Wrap(err, "drain script failed")
		}
		entries = append(entries, popped...)
	}

	return entries, nil
}

func (c *RedisCoordinator) QueueDepth(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	depth, err := c.rdb.LLen(ctx, queueKeyPrefix+campaignID.String()).Result()
	if err != nil {
		return 0, errs.Wrap(err, "failed to read queue depth")
	}
	return depth, nil
}
