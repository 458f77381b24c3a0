package cli_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/fillerbot/internal/cli"
	"github.com/mcoot/fillerbot/internal/model"
)

const (
	playerLine = "$$$ exec p1 : [filler]\n"
	singleTurn = `Plateau 3 5:
    01234
000 .....
001 ..O..
002 ....X
Piece 1 1:
*
`
	lostTurn = `Plateau 1 1:
    0
000 X
Piece 1 1:
*
`
)

type CLISuite struct {
	suite.Suite
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}

	// Keep the environment from leaking into config loading
	for _, key := range []string{
		"FILLER_LOG_LEVEL", "FILLER_STORAGE", "FILLER_REDIS_URL",
		"FILLER_TURN_TIMEOUT", "FILLER_PIECE_ORIENTATION",
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *CLISuite) run(input string, args ...string) error {
	s.stdout.Reset()
	s.stderr.Reset()

	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.Execute()
}

// logRecord finds the first JSON log line with the given message
func (s *CLISuite) logRecord(msg string) map[string]any {
	scanner := bufio.NewScanner(strings.NewReader(s.stderr.String()))
	for scanner.Scan() {
		var record map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			continue
		}
		if record["msg"] == msg {
			return record
		}
	}
	s.FailNow("log record not found", msg)
	return nil
}

func (s *CLISuite) TestPlay() {
	err := s.run(playerLine + singleTurn + lostTurn)
	s.Require().NoError(err)

	s.Equal("1 2\n0 0\n", s.stdout.String())

	record := s.logRecord("session finished")
	s.Equal(float64(2), record["turns"])
	s.Equal("no_legal_move", record["outcome"])
}

func (s *CLISuite) TestPlayLogsStayOffStdout() {
	err := s.run(playerLine+singleTurn, "--log-level", "debug")
	s.Require().NoError(err)

	s.Equal("1 2\n", s.stdout.String())
	s.Contains(s.stderr.String(), `"msg":"turn played"`)
}

func (s *CLISuite) TestPlayMalformedInput() {
	err := s.run(playerLine + strings.Replace(singleTurn, "Piece ", "Pieces ", 1))
	s.ErrorIs(err, model.ErrMalformedPieceHeader)
	s.Empty(s.stdout.String())
}

func (s *CLISuite) TestInvalidLogLevel() {
	err := s.run(playerLine+singleTurn, "--log-level", "loud")
	s.Error(err)
	s.Empty(s.stdout.String())
}

func (s *CLISuite) TestInvalidStorage() {
	err := s.run(playerLine+singleTurn, "--storage", "postgres")
	s.Error(err)
}

func (s *CLISuite) TestExplainText() {
	err := s.run(playerLine+singleTurn, "explain")
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "Player: O (enemy X)")
	s.Contains(out, "Strategy: ")
	s.Contains(out, "Candidates (1):")
	s.Contains(out, "Move: 1 2")
}

func (s *CLISuite) TestExplainJSONForcedStrategy() {
	err := s.run(playerLine+singleTurn, "explain", "--strategy", "blocking", "-o", "json")
	s.Require().NoError(err)

	var explanation cli.Explanation
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &explanation))

	s.Equal(model.StrategyBlocking, explanation.Strategy)
	s.True(explanation.Found)
	s.Equal("1 2", explanation.Move)
	s.Require().Len(explanation.Candidates, 1)
	s.True(explanation.Candidates[0].Best)
	s.Equal(2, explanation.Candidates[0].Col)
	s.Equal(1, explanation.Candidates[0].Row)
	s.Equal(13, explanation.Summary.FreeCells)
}

func (s *CLISuite) TestExplainNoMove() {
	err := s.run(playerLine+lostTurn, "explain", "-o", "json")
	s.Require().NoError(err)

	var explanation cli.Explanation
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &explanation))

	s.False(explanation.Found)
	s.Equal("0 0", explanation.Move)
	s.Nil(explanation.Score)
	s.Empty(explanation.Candidates)
}

func (s *CLISuite) TestExplainUnknownStrategy() {
	err := s.run(playerLine+singleTurn, "explain", "--strategy", "greedy")
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *CLISuite) TestExplainWithoutTurn() {
	err := s.run(playerLine, "explain")
	s.Error(err)
}

func (s *CLISuite) TestHistoryUnknownSession() {
	err := s.run("", "history", "NOPE")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *CLISuite) TestHistoryFromRedis() {
	mini := miniredis.RunT(s.T())
	redisArgs := []string{"--storage", "redis", "--redis-url", "redis://" + mini.Addr()}

	err := s.run(playerLine+singleTurn+lostTurn, redisArgs...)
	s.Require().NoError(err)
	sessionID, ok := s.logRecord("session finished")["session_id"].(string)
	s.Require().True(ok)

	err = s.run("", append(redisArgs, "history", sessionID, "-o", "json")...)
	s.Require().NoError(err)

	var history cli.History
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &history))
	s.Equal(sessionID, history.SessionID)
	s.Equal("O", history.Player)
	s.Require().Len(history.Turns, 2)
	s.Equal("1 2", history.Turns[0].Move)
	s.True(history.Turns[0].Found)
	s.Equal("0 0", history.Turns[1].Move)
	s.False(history.Turns[1].Found)

	err = s.run("", append(redisArgs, "history", sessionID)...)
	s.Require().NoError(err)
	s.Contains(s.stdout.String(), "Session: "+sessionID)
	s.Contains(s.stdout.String(), "Turns (2):")
}
