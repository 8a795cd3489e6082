// renderer/stats.go
// Copyright(c) 2026 glpaint contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"log/slog"
)

// RendererStats encapsulates assorted statistics from painting.
type RendererStats struct {
	Frames                     int
	DrawCalls                  int
	Vertices, Triangles        int
	BufferBytes                int
	TextureUploads             int
	PartialUploads             int
	TextureBytes               int
	TexturesFreed              int
	SkippedMeshes, ClippedAway int
}

func (rs *RendererStats) String() string {
	return fmt.Sprintf("%d frames, %d draw calls (%.2f MB): %d vertices, %d tris, %d clipped away; "+
		"%d texture uploads, %d partial (%.2f MB), %d freed",
		rs.Frames, rs.DrawCalls, float32(rs.BufferBytes)/(1024*1024), rs.Vertices, rs.Triangles, rs.ClippedAway,
		rs.TextureUploads, rs.PartialUploads, float32(rs.TextureBytes)/(1024*1024), rs.TexturesFreed)
}

func (rs *RendererStats) Merge(s RendererStats) {
	rs.Frames += s.Frames
	rs.DrawCalls += s.DrawCalls
	rs.Vertices += s.Vertices
	rs.Triangles += s.Triangles
	rs.BufferBytes += s.BufferBytes
	rs.TextureUploads += s.TextureUploads
	rs.PartialUploads += s.PartialUploads
	rs.TextureBytes += s.TextureBytes
	rs.TexturesFreed += s.TexturesFreed
	rs.SkippedMeshes += s.SkippedMeshes
	rs.ClippedAway += s.ClippedAway
}

func (rs RendererStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", rs.Frames),
		slog.Int("draw_calls", rs.DrawCalls),
		slog.Int("vertices", rs.Vertices),
		slog.Int("tris", rs.Triangles),
		slog.Int("buffer_memory", rs.BufferBytes),
		slog.Int("texture_uploads", rs.TextureUploads),
		slog.Int("partial_uploads", rs.PartialUploads),
		slog.Int("texture_memory", rs.TextureBytes),
		slog.Int("textures_freed", rs.TexturesFreed),
		slog.Int("skipped_meshes", rs.SkippedMeshes),
		slog.Int("clipped_away", rs.ClippedAway),
	)
}
