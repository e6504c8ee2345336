package machine

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/govalues/coins"
)

// loggingService decorates a Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a Service that logs every call to s.
// Failed calls are logged at warn level, the others at info level.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) leveled(err error) log.Logger {
	if err != nil {
		return level.Warn(s.logger)
	}
	return level.Info(s.logger)
}

func (s *loggingService) InsertCoin(ctx context.Context, user *coins.Wallet, c coins.Coin) (err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "insert_coin",
			"coin", c.String(),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.InsertCoin(ctx, user, c)
}

func (s *loggingService) Release(ctx context.Context, user *coins.Wallet) (released *coins.Wallet, err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "release",
			"released", walletString(released),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Release(ctx, user)
}

func (s *loggingService) Buy(ctx context.Context, user *coins.Wallet, x, y int) (r Receipt, err error) {
	defer func(begin time.Time) {
		s.leveled(err).Log(
			"method", "buy",
			"x", x,
			"y", y,
			"receipt", r.ID,
			"product", r.Product.Name,
			"paid", r.Paid,
			"change", walletString(r.Change),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Buy(ctx, user, x, y)
}

func walletString(w *coins.Wallet) string {
	if w == nil {
		return ""
	}
	return w.String()
}
