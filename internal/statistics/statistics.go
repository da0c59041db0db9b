package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/lox/blackjack/internal/game"
)

// Statistics tracks results across blackjack rounds. It is safe for
// concurrent use so parallel simulations can share one collector.
type Statistics struct {
	mu sync.Mutex

	Rounds      int     `json:"rounds"`
	Wins        int     `json:"wins"`
	Pushes      int     `json:"pushes"`
	Losses      int     `json:"losses"`       // dealer beat a standing player
	PlayerBusts int     `json:"player_busts"` // player went over 21
	DealerBusts int     `json:"dealer_busts"`
	Wagered     int     `json:"wagered"`
	Net         int     `json:"net"`
	SumNet2     float64 `json:"-"` // sum of squares for variance
	Values      []int   `json:"-"` // per-round net, for median
	BiggestWin  int     `json:"biggest_win"`
	BiggestLoss int     `json:"biggest_loss"`
}

// Record implements game.Recorder
func (s *Statistics) Record(result game.RoundResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(result)
}

func (s *Statistics) add(result game.RoundResult) {
	net := result.Net()

	s.Rounds++
	s.Wagered += result.Stake
	s.Net += net
	s.SumNet2 += float64(net) * float64(net)
	s.Values = append(s.Values, net)

	switch result.Outcome {
	case game.OutcomePlayerWin:
		s.Wins++
		if result.DealerBust() {
			s.DealerBusts++
		}
	case game.OutcomePush:
		s.Pushes++
	case game.OutcomeDealerWin:
		s.Losses++
	case game.OutcomePlayerBust:
		s.PlayerBusts++
	}

	if net > s.BiggestWin {
		s.BiggestWin = net
	}
	if -net > s.BiggestLoss {
		s.BiggestLoss = -net
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	other.mu.Lock()
	values := make([]int, len(other.Values))
	copy(values, other.Values)
	o := Statistics{
		Rounds: other.Rounds, Wins: other.Wins, Pushes: other.Pushes, Losses: other.Losses,
		PlayerBusts: other.PlayerBusts, DealerBusts: other.DealerBusts,
		Wagered: other.Wagered, Net: other.Net, SumNet2: other.SumNet2,
		BiggestWin: other.BiggestWin, BiggestLoss: other.BiggestLoss,
	}
	other.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rounds += o.Rounds
	s.Wins += o.Wins
	s.Pushes += o.Pushes
	s.Losses += o.Losses
	s.PlayerBusts += o.PlayerBusts
	s.DealerBusts += o.DealerBusts
	s.Wagered += o.Wagered
	s.Net += o.Net
	s.SumNet2 += o.SumNet2
	s.Values = append(s.Values, values...)
	s.BiggestWin = max(s.BiggestWin, o.BiggestWin)
	s.BiggestLoss = max(s.BiggestLoss, o.BiggestLoss)
}

// Mean returns the average net chips per round
func (s *Statistics) Mean() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mean()
}

// Variance returns the sample variance of net chips per round
func (s *Statistics) Variance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.variance()
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return math.Sqrt(s.variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stdError()
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confidenceInterval95()
}

// Median returns the median net per round
func (s *Statistics) Median() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.median()
}

// WinRate returns the share of rounds the player won
func (s *Statistics) WinRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// HouseEdge returns the house's take as a fraction of chips wagered
func (s *Statistics) HouseEdge() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.houseEdge()
}

// Callers of the lowercase helpers below hold mu.

func (s *Statistics) mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Net) / float64(s.Rounds)
}

func (s *Statistics) variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

func (s *Statistics) stdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return math.Sqrt(s.variance()) / math.Sqrt(float64(s.Rounds))
}

func (s *Statistics) confidenceInterval95() (float64, float64) {
	mean := s.mean()
	margin := 1.96 * s.stdError()
	return mean - margin, mean + margin
}

func (s *Statistics) median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]int, len(s.Values))
	copy(sorted, s.Values)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

func (s *Statistics) houseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return -float64(s.Net) / float64(s.Wagered)
}

// Validate checks the tallies are consistent with each other
func (s *Statistics) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Rounds < 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if total := s.Wins + s.Pushes + s.Losses + s.PlayerBusts; total != s.Rounds {
		return fmt.Errorf("outcomes (%d) do not add up to rounds (%d)", total, s.Rounds)
	}
	if s.DealerBusts > s.Wins {
		return fmt.Errorf("dealer busts (%d) exceed player wins (%d)", s.DealerBusts, s.Wins)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match rounds (%d)", len(s.Values), s.Rounds)
	}
	sum := 0
	for _, v := range s.Values {
		sum += v
	}
	if sum != s.Net {
		return fmt.Errorf("ledger mismatch: net=%d, sum of rounds=%d", s.Net, sum)
	}
	return nil
}

// Summary renders the statistics as a short multi-line report
func (s *Statistics) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Rounds:        %d\n", s.Rounds)
	if s.Rounds == 0 {
		return b.String()
	}
	pct := func(n int) float64 { return 100 * float64(n) / float64(s.Rounds) }
	fmt.Fprintf(&b, "Wins:          %d (%.1f%%), %d on dealer bust\n", s.Wins, pct(s.Wins), s.DealerBusts)
	fmt.Fprintf(&b, "Pushes:        %d (%.1f%%)\n", s.Pushes, pct(s.Pushes))
	fmt.Fprintf(&b, "Losses:        %d (%.1f%%)\n", s.Losses, pct(s.Losses))
	fmt.Fprintf(&b, "Player busts:  %d (%.1f%%)\n", s.PlayerBusts, pct(s.PlayerBusts))
	fmt.Fprintf(&b, "Net chips:     %+d on %d wagered\n", s.Net, s.Wagered)
	lo, hi := s.confidenceInterval95()
	fmt.Fprintf(&b, "Per round:     %+.2f ± %.2f (95%% CI %.2f to %.2f)\n", s.mean(), s.stdError(), lo, hi)
	fmt.Fprintf(&b, "Median round:  %+.1f\n", s.median())
	fmt.Fprintf(&b, "House edge:    %.2f%%\n", 100*s.houseEdge())
	return b.String()
}
