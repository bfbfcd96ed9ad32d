package sourcemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxc-go/oxc-core/internal/sourcemap"
)

func TestGeneratorTwoTokens(t *testing.T) {
	g := sourcemap.NewGenerator()
	g.AddMapping(sourcemap.Token{NameIndex: 0})
	g.AddMapping(sourcemap.Token{GeneratedColumn: 5, OriginalColumn: 8, NameIndex: sourcemap.NoName})
	require.Equal(t, "AAAAA,KAAQ", g.String())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := sourcemap.Map{
		Sources:  []string{"a.ts"},
		Names:    []string{"foo"},
		Mappings: "AAAAA,KAAQ",
	}
	data, err := sourcemap.Encode(m)
	require.NoError(t, err)

	decoded, err := sourcemap.Decode(data)
	require.NoError(t, err)
	require.Equal(t, 3, decoded.Version)
	require.Equal(t, m.Mappings, decoded.Mappings)
	require.Equal(t, m.Sources, decoded.Sources)
}

func TestJoinChunksRebasesFirstMapping(t *testing.T) {
	chunkA := sourcemap.EncodeChunk([]sourcemap.Token{
		{GeneratedLine: 0, GeneratedColumn: 0, NameIndex: sourcemap.NoName},
		{GeneratedLine: 0, GeneratedColumn: 4, NameIndex: sourcemap.NoName},
	})
	chunkB := sourcemap.EncodeChunk([]sourcemap.Token{
		{GeneratedLine: 0, GeneratedColumn: 2, OriginalLine: 1, NameIndex: sourcemap.NoName},
	})
	joined := sourcemap.Join([]sourcemap.Chunk{chunkA, chunkB})
	require.NotEmpty(t, joined)
}

func TestVLQRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 31, -31, 1000, -1000} {
		g := sourcemap.NewGenerator()
		g.AddMapping(sourcemap.Token{GeneratedColumn: v, NameIndex: sourcemap.NoName})
		decodedCol, _ := sourcemap.DecodeVLQ([]byte(g.String()), 0)
		require.Equal(t, v, decodedCol)
	}
}
