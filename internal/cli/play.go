package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/knightsfork/varchess/internal/board"
	"github.com/knightsfork/varchess/internal/engine"
	"github.com/knightsfork/varchess/internal/game"
	"github.com/knightsfork/varchess/internal/storage"
)

// Play builds the interactive play command.
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		Args:  cobra.NoArgs,

		Long: heredoc.Doc(`play starts an interactive game against the search engine on a
			board of any size from 3×3 to 99×99.

			Enter moves in coordinate form, like "e2e4" or "b2b10". Other
			commands at the prompt: "fen" prints the current position string,
			"resign" concedes, "quit" abandons the game.`),

		RunE: runPlay,
	}

	cmd.Flags().Int("size", 8, "board size")
	cmd.Flags().String("setup", "classic", "starting setup (classic|threeranks|shuffle)")
	cmd.Flags().String("difficulty", "medium", "engine difficulty (easy|medium|hard)")
	cmd.Flags().String("color", "white", "side to play (white|black)")
	cmd.Flags().String("fen", "", "start from a position string instead of a setup")
	cmd.Flags().String("save", "", "save the finished game under this name")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	size, _ := cmd.Flags().GetInt("size")
	setupName, _ := cmd.Flags().GetString("setup")
	diffName, _ := cmd.Flags().GetString("difficulty")
	colorName, _ := cmd.Flags().GetString("color")
	fen, _ := cmd.Flags().GetString("fen")
	saveName, _ := cmd.Flags().GetString("save")

	mode, err := board.ParseSetupMode(setupName)
	if err != nil {
		return err
	}
	diff, ok := engine.ParseDifficulty(diffName)
	if !ok {
		return fmt.Errorf("unknown difficulty: %q", diffName)
	}
	human := board.White
	if strings.EqualFold(colorName, "black") {
		human = board.Black
	}

	g, err := game.New(size, mode)
	if err != nil {
		return err
	}
	if fen != "" {
		if err := g.ImportFEN(fen); err != nil {
			return err
		}
	}

	eng := engine.New()
	scanner := bufio.NewScanner(os.Stdin)
	resigned := false

	for g.Outcome() == game.Playing {
		fmt.Println(renderBoard(g.Position()))

		if g.SideToMove() == human {
			quit, resign := humanTurn(g, scanner)
			if quit {
				return nil
			}
			if resign {
				resigned = true
				break
			}
		} else {
			engineTurn(g, eng, human.Other(), diff)
		}
	}

	fmt.Println(renderBoard(g.Position()))
	outcome := g.Outcome()
	if resigned {
		fmt.Println("You resigned.")
	} else {
		fmt.Printf("Game over: %s\n", outcome)
	}

	won := (outcome == game.WhiteWins && human == board.White) ||
		(outcome == game.BlackWins && human == board.Black)
	draw := outcome == game.Stalemate || outcome == game.DrawByClock
	recordGame(g, saveName, diff, won, draw && !resigned)

	return nil
}

// humanTurn reads and applies one human move. Returns quit/resign intents.
func humanTurn(g *game.Game, scanner *bufio.Scanner) (quit, resign bool) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return true, false
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "":
			continue
		case "quit":
			return true, false
		case "resign":
			return false, true
		case "fen":
			fmt.Println(g.ExportFEN())
			continue
		}

		from, to, err := board.ParseMove(input)
		if err != nil {
			logrus.Warn(err)
			continue
		}
		result, ok := g.TryMakeMove(from, to)
		if !ok {
			logrus.Warnf("illegal move: %s", input)
			continue
		}
		if result.PromotionPending {
			result = completePromotion(g, scanner)
		}
		fmt.Printf("you played %s\n", result.Notation)
		return false, false
	}
}

// completePromotion prompts for the promotion piece; anything unrecognized
// becomes a queen.
func completePromotion(g *game.Game, scanner *bufio.Scanner) game.MoveResult {
	fmt.Print("promote to (q/r/b/n): ")
	choice := board.Queen
	if scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "r":
			choice = board.Rook
		case "b":
			choice = board.Bishop
		case "n":
			choice = board.Knight
		}
	}
	result, _ := g.CompletePromotion(choice)
	return result
}

// engineTurn asks the search engine for a move and applies it.
func engineTurn(g *game.Game, eng *engine.Engine, us board.Color, diff engine.Difficulty) {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " thinking..."
	s.Start()
	move := eng.BestMove(g.Position(), us, diff)
	s.Stop()

	if move == board.NoMove {
		return
	}
	result, ok := g.TryMakeMove(move.From, move.To)
	if !ok {
		logrus.Errorf("engine proposed an illegal move: %s", move)
		return
	}
	if result.PromotionPending {
		result, _ = g.CompletePromotion(board.Queen)
	}
	fmt.Printf("engine played %s\n", result.Notation)
}

// recordGame persists statistics and, when requested, the finished game.
// Storage failures are logged, not fatal; the game already happened.
func recordGame(g *game.Game, saveName string, diff engine.Difficulty, won, draw bool) {
	store, err := storage.Open()
	if err != nil {
		logrus.Warnf("storage unavailable: %v", err)
		return
	}
	defer store.Close()

	if err := store.RecordResult(won, draw, diff.String()); err != nil {
		logrus.Warnf("could not record result: %v", err)
	}

	if saveName != "" {
		saved := &storage.SavedGame{
			Name:    saveName,
			FEN:     g.ExportFEN(),
			Setup:   g.Position().Setup.String(),
			Moves:   g.History(),
			Outcome: g.Outcome().String(),
		}
		if err := store.SaveGame(saved); err != nil {
			logrus.Warnf("could not save game: %v", err)
		} else {
			logrus.Infof("saved game %q", saveName)
		}
	}
}
