package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motionkit/manifold/pkg/domain"
)

const boxDescription = `name: reach_target
position_constraints:
  - link_name: tool0
    extents: [0.1, 0.1, 0.1]
    poses:
      - position: {x: 0.5, y: 0.2, z: 0.0}
        orientation: {real: 1, imag: 0, jmag: 0, kmag: 0}
`

func writeDescription(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "constraints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// stubCmd carries the flags runValidate reads, without going through the
// root command's argument parsing.
func stubCmd(constraints string) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("constraints", constraints, "")
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().Int("dof", 3, "")
	return cmd
}

func TestValidateCommand_AcceptsBoxDescription(t *testing.T) {
	path := writeDescription(t, boxDescription)
	require.NoError(t, runValidate(stubCmd(path)))
}

func TestLoadConstraintSet_DecodesFields(t *testing.T) {
	path := writeDescription(t, boxDescription)

	set, err := loadConstraintSet(stubCmd(path))
	require.NoError(t, err)

	assert.Equal(t, "reach_target", set.Name)
	require.Len(t, set.Position, 1)
	pc := set.Position[0]
	assert.Equal(t, "tool0", pc.LinkName)
	assert.Equal(t, []float64{0.1, 0.1, 0.1}, pc.Extents)
	require.Len(t, pc.Poses, 1)
	assert.Equal(t, 0.5, pc.Poses[0].Position.X)
	assert.Equal(t, 1.0, pc.Poses[0].Orientation.Real)
}

func TestLoadConstraintSet_MissingFile(t *testing.T) {
	_, err := loadConstraintSet(stubCmd(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestLoadConstraintSet_MalformedYAML(t *testing.T) {
	path := writeDescription(t, "position_constraints: {not: a list}\n")
	_, err := loadConstraintSet(stubCmd(path))
	assert.Error(t, err)
}

func TestRunValidate_RejectsEmptyDescription(t *testing.T) {
	path := writeDescription(t, "name: empty\n")
	err := runValidate(stubCmd(path))
	assert.ErrorIs(t, err, domain.ErrNoConstraints)
}
