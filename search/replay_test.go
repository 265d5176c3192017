package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomicromouse/mazecore/direction"
	"github.com/gomicromouse/mazecore/maze"
	"github.com/gomicromouse/mazecore/search"
)

// replayRobot drives a search.Agent against a fully-specified truth maze,
// answering UpdateWall queries by reading the truth maze instead of real
// sensors. It exists only to exercise the state machine end-to-end in
// tests; it is not part of this package's public API.
type replayRobot struct {
	t     *testing.T
	truth *maze.Maze
	agent *search.Agent
}

func newReplayRobot(t *testing.T, truth *maze.Maze, opts ...search.Option) *replayRobot {
	t.Helper()
	m, err := maze.New(truth.Size().N, maze.WithStart(truth.Start()), maze.WithGoals(truth.Goals()...))
	require.NoError(t, err)
	return &replayRobot{t: t, truth: truth, agent: search.New(m, opts...)}
}

// sense reports the three walls visible from the agent's current pose,
// read out of the truth maze, and feeds them to the agent.
func (r *replayRobot) sense() {
	pose := r.agent.Pose()
	left := r.truth.IsWallAt(pose.P, pose.D.Add(direction.Left))
	front := r.truth.IsWallAt(pose.P, pose.D.Add(direction.Front))
	right := r.truth.IsWallAt(pose.P, pose.D.Add(direction.Right))
	r.agent.UpdateWall(left, front, right)
}

// runToStart drives CalcNextDirections/sense in lockstep until the agent
// reports REACHED_START, failing the test if that doesn't happen within
// maxSteps calls or if any phase returns an error.
func (r *replayRobot) runToStart(maxSteps int) {
	r.t.Helper()
	for i := 0; i < maxSteps; i++ {
		r.sense()
		nd, err := r.agent.CalcNextDirections()
		require.NoError(r.t, err)
		if r.agent.State() == search.REACHED_START {
			return
		}
		moved := false
		for _, d := range nd.NextDirectionsKnown {
			r.agent.SetPose(r.agent.Pose().Next(d))
			moved = true
		}
		if !moved {
			require.NotEmpty(r.t, nd.NextDirectionCandidates, "step %d: no known run and no candidates in state %s", i, r.agent.State())
			r.agent.SetPose(r.agent.Pose().Next(nd.NextDirectionCandidates[0]))
		}
	}
	r.t.Fatalf("search did not reach start within %d steps", maxSteps)
}
