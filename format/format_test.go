package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpknap/minknap/format"
)

func TestStandard_RoundTrip(t *testing.T) {
	src := "4 5\n3 2\n4 3\n5 4\n6 5\n"

	ins, err := format.ReadStandard(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, ins.TotalItemNumber())
	require.Equal(t, int64(5), ins.TotalCapacity())
	require.Equal(t, int64(2), ins.Item(0).W)
	require.Equal(t, int64(3), ins.Item(0).P)

	var buf bytes.Buffer
	require.NoError(t, format.WriteStandard(&buf, ins))

	round, err := format.ReadStandard(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, ins.TotalItemNumber(), round.TotalItemNumber())
	require.Equal(t, ins.TotalCapacity(), round.TotalCapacity())
	for j := 0; j < ins.TotalItemNumber(); j++ {
		require.Equal(t, ins.Item(j).W, round.Item(j).W)
	}
}

func TestSubsetSumStandard_ProfitEqualsWeight(t *testing.T) {
	src := "3 10\n3\n4\n5\n"

	ins, err := format.ReadSubsetSumStandard(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, ins.TotalItemNumber())
	for pos := 0; pos < ins.TotalItemNumber(); pos++ {
		it := ins.Item(0 + pos)
		require.Equal(t, it.W, it.P)
	}

	var buf bytes.Buffer
	require.NoError(t, format.WriteSubsetSumStandard(&buf, ins))
	require.Equal(t, src, buf.String())
}

func TestReadStandard_RejectsMalformedInput(t *testing.T) {
	_, err := format.ReadStandard(strings.NewReader("not a number"))
	require.ErrorIs(t, err, format.ErrMalformed)
}

func TestReadPisinger_ParsesHeaderAndCertificate(t *testing.T) {
	src := "knapPI_test\n" +
		"n 3\n" +
		"c 10\n" +
		"z 70\n" +
		"\n" +
		"1,10,5,0\n" +
		"2,40,4,1\n" +
		"3,30,6,1\n"

	ins, sol, err := format.ReadPisinger(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, ins.TotalItemNumber())
	require.Equal(t, int64(10), ins.TotalCapacity())
	require.NotNil(t, sol)
	require.Equal(t, int64(70), sol.Profit())
	require.True(t, sol.Contains(1))
	require.True(t, sol.Contains(2))
	require.False(t, sol.Contains(0))
}

func TestCertificate_RoundTrip(t *testing.T) {
	ins, err := format.ReadStandard(strings.NewReader("3 10\n10 5\n40 4\n30 6\n"))
	require.NoError(t, err)

	ins.FixIn(1)

	var buf bytes.Buffer
	sol := ins.ReducedSolution()
	require.NoError(t, format.WriteCertificate(&buf, sol, ins.TotalItemNumber()))

	round, err := format.ReadCertificate(strings.NewReader(buf.String()), ins)
	require.NoError(t, err)
	require.Equal(t, sol.Profit(), round.Profit())
	require.Equal(t, sol.Weight(), round.Weight())
}

func TestDetectKind_MissingFormatFile(t *testing.T) {
	_, err := format.DetectKind("/nonexistent/dir/instance.txt")
	require.ErrorIs(t, err, format.ErrFormatFileMissing)
}
