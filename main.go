// Command connect is a sample text front end for the connection-game
// engine: any mix of human and computer players on a configurable board.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"connect/engine"
	"connect/experiments"
	"connect/game"
	"connect/searcher"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	human    = 0
	computer = 1
)

var pieces = [2]rune{'X', 'O'}

func main() {
	_ = godotenv.Load() // Optional .env for LOG_LEVEL and experiment knobs

	throughput := flag.Bool("throughput", false, "run the search throughput experiment instead of a game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "warn"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if *throughput {
		experiments.RunThroughput()
		return
	}

	play()
}

func play() {
	in := bufio.NewReader(os.Stdin)

	fmt.Println()
	fmt.Println("****  Welcome to the game of Connect!  ****")
	fmt.Println()

	width := getNum(in, "Width of board", 1, 40, 7)
	height := getNum(in, "Height of board", 1, 40, 6)
	connect := getNum(in, "Number to connect", 1, 40, 4)

	players := [2]int{human, human}
	levels := [2]int{}
	turn := 0
	humans := getNum(in, "Number of human players (0, 1 or 2)", 0, 2, 1)

	switch humans {
	case 0:
		players[0], players[1] = computer, computer
		levels[0] = getNum(in, "Skill level of player X", 1, searcher.MaxPlies, 5)
		levels[1] = getNum(in, "Skill level of player O", 1, searcher.MaxPlies, 5)
	case 1:
		players[0], players[1] = human, computer
		levels[1] = getNum(in, "Skill level of computer", 1, searcher.MaxPlies, 5)
		if !askYes(in, "Would you like to go first") {
			turn = 1
		}
	case 2:
	}

	e := engine.New()
	e.NewGame(width, height, connect)
	e.Poll(func() {
		fmt.Print(".")
	}, 500*time.Millisecond)

	for !e.IsWinner(0) && !e.IsWinner(1) && !e.IsTie() {
		printBoard(e.Board(), width, height)

		if players[turn] == human {
			for {
				prompt := "Drop in which column"
				if humans == 2 {
					prompt = fmt.Sprintf("Player %c, drop in which column", pieces[turn])
				}
				column := getNum(in, prompt, 1, width, -1) - 1
				if _, ok := e.MakeMove(turn, column); ok {
					break
				}
			}
		} else {
			if humans == 1 {
				fmt.Print("Thinking.")
			} else {
				fmt.Printf("Player %c is thinking.", pieces[turn])
			}
			column, _, _ := e.AutoMove(turn, levels[turn])
			if humans == 1 {
				fmt.Printf("\n\nI dropped my piece into column %d.\n", column+1)
			} else {
				fmt.Printf("\n\nPlayer %c dropped its piece into column %d.\n", pieces[turn], column+1)
			}
		}

		turn ^= 1
	}

	printBoard(e.Board(), width, height)

	switch {
	case e.IsWinner(0):
		announceWin(e, 0, humans)
	case e.IsWinner(1):
		announceWin(e, 1, humans)
	default:
		fmt.Println("There was a tie!")
	}
	fmt.Println()

	e.EndGame()
}

func announceWin(e *engine.Engine, player, humans int) {
	switch {
	case humans == 1 && player == 0:
		fmt.Print("You won!")
	case humans == 1:
		fmt.Print("I won!")
	default:
		fmt.Printf("Player %c won!", pieces[player])
	}
	lo, hi := e.WinSpan()
	fmt.Printf("  (%d,%d) to (%d,%d)\n", lo.Col+1, lo.Row+1, hi.Col+1, hi.Row+1)
}

// getNum prompts until it reads an integer in [lower, upper]. An empty
// line takes the default when one is given; "q" or end of input quits.
func getNum(in *bufio.Reader, prompt string, lower, upper, fallback int) int {
	for {
		if fallback >= 0 {
			fmt.Printf("%s [%d]? ", prompt, fallback)
		} else {
			fmt.Printf("%s? ", prompt)
		}

		line, err := in.ReadString('\n')
		if err != nil || strings.HasPrefix(line, "q") {
			fmt.Println("\nGoodbye!")
			os.Exit(0)
		}

		line = strings.TrimSpace(line)
		if line == "" && fallback >= 0 {
			return fallback
		}
		number, err := strconv.Atoi(line)
		if err == nil && number >= lower && number <= upper {
			return number
		}
	}
}

func askYes(in *bufio.Reader, prompt string) bool {
	for {
		fmt.Printf("%s [y]? ", prompt)
		line, err := in.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			os.Exit(0)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

func printBoard(board [][]game.Cell, width, height int) {
	pad, dash := " ", "-"
	if width > 19 {
		pad, dash = "", ""
	}

	fmt.Println()
	for row := height - 1; row >= 0; row-- {
		fmt.Print("|")
		for col := 0; col < width; col++ {
			if board[col][row] == game.Empty {
				fmt.Printf("%s %s|", pad, pad)
			} else {
				fmt.Printf("%s%c%s|", pad, pieces[board[col][row]], pad)
			}
		}
		fmt.Println()

		fmt.Print("+")
		for col := 0; col < width; col++ {
			fmt.Printf("%s%s%s+", dash, "-", dash)
		}
		fmt.Println()
	}

	fmt.Print(" ")
	for col := 0; col < width; col++ {
		label := col + 1
		if col > 8 {
			label = (col + 1) / 10
		}
		fmt.Printf("%s%d%s ", pad, label, pad)
	}
	if width > 9 {
		fmt.Print("\n ")
		for col := 0; col < width; col++ {
			if col > 8 {
				fmt.Printf("%s%d%s ", pad, (col+1)%10, pad)
			} else {
				fmt.Printf("%s %s ", pad, pad)
			}
		}
	}
	fmt.Println()
	fmt.Println()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
