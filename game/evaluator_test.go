package game

import "testing"

func TestEvaluate(t *testing.T) {
	eval := NewEvaluator(DefaultRewardTable())

	tests := []struct {
		name     string
		hand     []Card
		expected Combination
		reward   int64
	}{
		{
			name: "LuckyTriple same rank same suit",
			hand: []Card{
				{Suit: Hearts, Rank: RankFive},
				{Suit: Hearts, Rank: RankFive},
				{Suit: Hearts, Rank: RankFive},
			},
			expected: CombinationLuckyTriple,
			reward:   15,
		},
		{
			name: "Triple same rank mixed suits",
			hand: []Card{
				{Suit: Hearts, Rank: RankFour},
				{Suit: Clubs, Rank: RankFour},
				{Suit: Spades, Rank: RankFour},
			},
			expected: CombinationTriple,
			reward:   9,
		},
		{
			name: "StraightFlush consecutive same suit",
			hand: []Card{
				{Suit: Diamonds, Rank: RankTwo},
				{Suit: Diamonds, Rank: RankThree},
				{Suit: Diamonds, Rank: RankFour},
			},
			expected: CombinationStraightFlush,
			reward:   12,
		},
		{
			name: "Straight ace low",
			hand: []Card{
				{Suit: Hearts, Rank: RankAce},
				{Suit: Clubs, Rank: RankTwo},
				{Suit: Spades, Rank: RankThree},
			},
			expected: CombinationStraight,
			reward:   6,
		},
		{
			name: "No ace high wraparound",
			hand: []Card{
				{Suit: Hearts, Rank: RankFive},
				{Suit: Clubs, Rank: RankSix},
				{Suit: Spades, Rank: RankAce},
			},
			expected: CombinationNone,
			reward:   0,
		},
		{
			name: "Flush same suit not consecutive",
			hand: []Card{
				{Suit: Spades, Rank: RankAce},
				{Suit: Spades, Rank: RankThree},
				{Suit: Spades, Rank: RankSix},
			},
			expected: CombinationFlush,
			reward:   5,
		},
		{
			name: "None mixed everything",
			hand: []Card{
				{Suit: Hearts, Rank: RankAce},
				{Suit: Clubs, Rank: RankThree},
				{Suit: Spades, Rank: RankSix},
			},
			expected: CombinationNone,
			reward:   0,
		},
		{
			name: "Straight unsorted input",
			hand: []Card{
				{Suit: Hearts, Rank: RankSix},
				{Suit: Clubs, Rank: RankFour},
				{Suit: Spades, Rank: RankFive},
			},
			expected: CombinationStraight,
			reward:   6,
		},
		{
			name: "Pair only is none",
			hand: []Card{
				{Suit: Hearts, Rank: RankTwo},
				{Suit: Clubs, Rank: RankTwo},
				{Suit: Spades, Rank: RankFive},
			},
			expected: CombinationNone,
			reward:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo, reward := eval.Evaluate(tt.hand)
			if combo != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, combo)
			}
			if reward != tt.reward {
				t.Errorf("expected reward %d, got %d", tt.reward, reward)
			}
		})
	}
}

func TestEvaluateOrderInvariant(t *testing.T) {
	eval := NewEvaluator(DefaultRewardTable())

	hands := [][]Card{
		{{Suit: Diamonds, Rank: RankTwo}, {Suit: Diamonds, Rank: RankThree}, {Suit: Diamonds, Rank: RankFour}},
		{{Suit: Hearts, Rank: RankFour}, {Suit: Clubs, Rank: RankFour}, {Suit: Spades, Rank: RankFour}},
		{{Suit: Spades, Rank: RankAce}, {Suit: Spades, Rank: RankThree}, {Suit: Spades, Rank: RankSix}},
		{{Suit: Hearts, Rank: RankAce}, {Suit: Clubs, Rank: RankThree}, {Suit: Spades, Rank: RankSix}},
	}

	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for _, hand := range hands {
		base, baseReward := eval.Evaluate(hand)
		for _, p := range perms {
			permuted := []Card{hand[p[0]], hand[p[1]], hand[p[2]]}
			combo, reward := eval.Evaluate(permuted)
			if combo != base || reward != baseReward {
				t.Errorf("hand %v permuted as %v: got (%s, %d), want (%s, %d)",
					hand, permuted, combo, reward, base, baseReward)
			}
		}
	}
}

func TestEvaluateMalformedHand(t *testing.T) {
	eval := NewEvaluator(DefaultRewardTable())

	for _, hand := range [][]Card{
		nil,
		{},
		{{Suit: Hearts, Rank: RankAce}},
		{{Suit: Hearts, Rank: RankAce}, {Suit: Hearts, Rank: RankTwo}},
		{{Suit: Hearts, Rank: RankAce}, {Suit: Hearts, Rank: RankTwo}, {Suit: Hearts, Rank: RankThree}, {Suit: Hearts, Rank: RankFour}},
	} {
		combo, reward := eval.Evaluate(hand)
		if combo != CombinationNone || reward != 0 {
			t.Errorf("hand of size %d: expected none/0, got %s/%d", len(hand), combo, reward)
		}
	}
}

// Every 3-card multiset maps to exactly one combination, and the reward
// ordering between tiers holds.
func TestEvaluateExhaustiveAndTierOrder(t *testing.T) {
	table := DefaultRewardTable()
	order := []Combination{
		CombinationLuckyTriple,
		CombinationStraightFlush,
		CombinationTriple,
		CombinationStraight,
		CombinationFlush,
		CombinationNone,
	}
	for i := 1; i < len(order); i++ {
		if table[order[i-1]] <= table[order[i]] {
			t.Errorf("reward for %s (%d) should exceed %s (%d)",
				order[i-1], table[order[i-1]], order[i], table[order[i]])
		}
	}

	eval := NewEvaluator(table)
	known := map[Combination]bool{
		CombinationLuckyTriple:   true,
		CombinationStraightFlush: true,
		CombinationTriple:        true,
		CombinationStraight:      true,
		CombinationFlush:         true,
		CombinationNone:          true,
	}

	// All hands over the full card set, duplicates included: a reshuffled
	// deck plus held cards can repeat a card, which is how lucky triples
	// happen at all.
	var all []Card
	for _, s := range Suits {
		for _, r := range Ranks {
			all = append(all, Card{Suit: s, Rank: r})
		}
	}
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				combo, reward := eval.Evaluate([]Card{a, b, c})
				if !known[combo] {
					t.Fatalf("hand [%v %v %v] evaluated to unknown combination %q", a, b, c, combo)
				}
				if reward != table[combo] {
					t.Fatalf("hand [%v %v %v]: reward %d does not match table value %d for %s",
						a, b, c, reward, table[combo], combo)
				}
			}
		}
	}
}
