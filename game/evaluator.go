package game

import "sort"

// Combination is the categorical rank of a 3-card hand.
type Combination string

const (
	CombinationNone          Combination = "none"
	CombinationFlush         Combination = "flush"
	CombinationStraight      Combination = "straight"
	CombinationTriple        Combination = "triple"
	CombinationStraightFlush Combination = "straight_flush"
	CombinationLuckyTriple   Combination = "lucky_triple"
)

// RewardTable maps each combination to its payout amount. Treated as
// configuration so tiers can be tuned without touching the evaluator.
type RewardTable map[Combination]int64

// DefaultRewardTable returns the stock tier values.
func DefaultRewardTable() RewardTable {
	return RewardTable{
		CombinationLuckyTriple:   15,
		CombinationStraightFlush: 12,
		CombinationTriple:        9,
		CombinationStraight:      6,
		CombinationFlush:         5,
		CombinationNone:          0,
	}
}

// Evaluator classifies 3-card hands. Pure and total: any input maps to
// exactly one combination, and the result depends only on the card multiset,
// not on position.
type Evaluator struct {
	rewards RewardTable
}

func NewEvaluator(rewards RewardTable) *Evaluator {
	return &Evaluator{rewards: rewards}
}

type handShape struct {
	sameRank    bool
	sameSuit    bool
	consecutive bool
}

type rule struct {
	combo Combination
	match func(handShape) bool
}

// combinationRules is the priority order made explicit: rules are tried top
// to bottom and the first match wins, so a higher reward can never be
// shadowed by a later, lower check. The final rule matches everything.
var combinationRules = []rule{
	{CombinationLuckyTriple, func(h handShape) bool { return h.sameRank && h.sameSuit }},
	{CombinationTriple, func(h handShape) bool { return h.sameRank }},
	{CombinationStraightFlush, func(h handShape) bool { return h.consecutive && h.sameSuit }},
	{CombinationStraight, func(h handShape) bool { return h.consecutive }},
	{CombinationFlush, func(h handShape) bool { return h.sameSuit }},
	{CombinationNone, func(h handShape) bool { return true }},
}

// Evaluate returns the hand's combination and reward. A hand that is not
// exactly 3 cards evaluates to none with reward 0 rather than failing.
func (e *Evaluator) Evaluate(hand []Card) (Combination, int64) {
	if len(hand) != 3 {
		return CombinationNone, 0
	}

	shape := handShape{
		sameRank:    hand[0].Rank == hand[1].Rank && hand[1].Rank == hand[2].Rank,
		sameSuit:    hand[0].Suit == hand[1].Suit && hand[1].Suit == hand[2].Suit,
		consecutive: isConsecutive(hand),
	}

	for _, r := range combinationRules {
		if r.match(shape) {
			return r.combo, e.rewards[r.combo]
		}
	}
	return CombinationNone, 0
}

// isConsecutive reports whether the 3 ranks form a run under the fixed order
// A,2,3,4,5,6. Ace is low only: sorted adjacent gaps must each be exactly 1.
func isConsecutive(hand []Card) bool {
	ranks := []int{int(hand[0].Rank), int(hand[1].Rank), int(hand[2].Rank)}
	sort.Ints(ranks)
	return ranks[1]-ranks[0] == 1 && ranks[2]-ranks[1] == 1
}
