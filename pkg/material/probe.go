package material

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/textloom/textloom/pkg/models"
)

// ProbeImage reads intrinsic width/height from the image header.
func ProbeImage(localPath string) (models.ProbeResult, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return models.ProbeResult{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return models.ProbeResult{}, fmt.Errorf("failed to decode image header: %w", err)
	}

	return models.ProbeResult{Width: cfg.Width, Height: cfg.Height}, nil
}

// ffprobeOutput is the subset of ffprobe -show_streams/-show_format output
// the prober reads.
type ffprobeOutput struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
		Duration     string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeVideo runs ffprobe against a local path or URL. The call is bounded
// by the given timeout.
func ProbeVideo(ctx context.Context, target string, timeout time.Duration) (models.ProbeResult, error) {
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, "ffprobe",
		"-v", "error",
		"-show_streams",
		"-show_format",
		"-of", "json",
		target,
	)
	out, err := cmd.Output()
	if err != nil {
		return models.ProbeResult{}, fmt.Errorf("ffprobe %s: %w", target, err)
	}

	var parsed ffprobeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return models.ProbeResult{}, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var result models.ProbeResult
	for _, s := range parsed.Streams {
		if s.CodecType != "video" {
			continue
		}
		result.Width = s.Width
		result.Height = s.Height
		result.FPS = parseFrameRate(s.AvgFrameRate)
		if d, err := strconv.ParseFloat(s.Duration, 64); err == nil {
			result.Duration = d
		}
		break
	}
	if result.Duration == 0 {
		if d, err := strconv.ParseFloat(parsed.Format.Duration, 64); err == nil {
			result.Duration = d
		}
	}
	if result.Width == 0 && result.Height == 0 && result.Duration == 0 {
		return result, fmt.Errorf("ffprobe found no usable stream in %s", target)
	}

	return result, nil
}

// ExtractKeyframes pulls up to count frames at evenly spaced timestamps from
// a local video into dir, returning the written frame paths in order.
func ExtractKeyframes(ctx context.Context, localPath, dir string, count int, duration float64, timeout time.Duration) ([]string, error) {
	if count < 1 {
		count = 1
	}
	if duration <= 0 {
		duration = 1
	}

	var frames []string
	for i := 0; i < count; i++ {
		// Midpoints of equal segments, so one frame lands mid-video.
		ts := duration * (float64(i) + 0.5) / float64(count)
		framePath := fmt.Sprintf("%s/keyframe_%d.jpg", strings.TrimRight(dir, "/"), i)

		frameCtx, cancel := context.WithTimeout(ctx, timeout)
		cmd := exec.CommandContext(frameCtx, "ffmpeg",
			"-ss", strconv.FormatFloat(ts, 'f', 2, 64),
			"-i", localPath,
			"-frames:v", "1",
			"-q:v", "2",
			"-y",
			framePath,
		)
		err := cmd.Run()
		cancel()
		if err != nil {
			return frames, fmt.Errorf("ffmpeg keyframe %d of %s: %w", i, localPath, err)
		}
		frames = append(frames, framePath)
	}

	return frames, nil
}

// parseFrameRate converts ffprobe's "num/den" rate to a float.
func parseFrameRate(rate string) float64 {
	parts := strings.SplitN(rate, "/", 2)
	if len(parts) != 2 {
		f, _ := strconv.ParseFloat(rate, 64)
		return f
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}
