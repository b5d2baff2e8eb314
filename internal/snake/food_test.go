package snake

import (
	"math/rand"
	"testing"
)

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	r := Rules{Width: 4, Height: 3, PointsPerFood: 1, InitialSpeed: 1, MaxSpeed: 1}
	rng := rand.New(rand.NewSource(7))

	// Leave exactly two free cells.
	var snake []Cell
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if (x == 3 && y == 2) || (x == 0 && y == 1) {
				continue
			}
			snake = append(snake, Cell{X: x, Y: y})
		}
	}

	hits := map[Cell]int{}
	for range 200 {
		food, ok := PlaceFood(snake, r, rng)
		if !ok {
			t.Fatal("expected a free cell")
		}
		hits[food]++
	}
	if len(hits) != 2 || hits[Cell{X: 3, Y: 2}] == 0 || hits[Cell{X: 0, Y: 1}] == 0 {
		t.Errorf("food should land on both free cells, got %v", hits)
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	r := Rules{Width: 2, Height: 2, PointsPerFood: 1, InitialSpeed: 1, MaxSpeed: 1}
	snake := []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	food, ok := PlaceFood(snake, r, rand.New(rand.NewSource(1)))
	if ok {
		t.Errorf("expected no food on a full board, got %v", food)
	}
}

func TestPlaceFoodInBounds(t *testing.T) {
	r := DefaultRules()
	rng := rand.New(rand.NewSource(999))
	snake := []Cell{r.Start()}

	for range 100 {
		food, ok := PlaceFood(snake, r, rng)
		if !ok {
			t.Fatal("expected food")
		}
		if !r.Bounds().Contains(food.X, food.Y) {
			t.Fatalf("food %v out of bounds", food)
		}
		if food == snake[0] {
			t.Fatalf("food %v on the snake", food)
		}
	}
}
