package handlers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anacrolix/torrent/metainfo"
	"github.com/cehbz/torrentname"
	"github.com/inhies/go-bytesize"

	"github.com/amaumene/nyaainfo/internal/constants"
	"github.com/amaumene/nyaainfo/internal/models"
)

// formatDetails renders the extra lines printed with --details.
func (h *Handler) formatDetails(body []byte) (string, error) {
	var info models.TorrentInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("failed to decode torrent info: %w", err)
	}

	var b strings.Builder

	if info.URL != "" {
		fmt.Fprintf(&b, "URL: %s\n", info.URL)
	}
	if info.Information != "" {
		fmt.Fprintf(&b, "Information: %s\n", info.Information)
	}
	fmt.Fprintf(&b, "Size: %d bytes (%s)\n", info.Filesize, bytesize.New(float64(info.Filesize)).String())
	fmt.Fprintf(&b, "Anonymous: %s\n", yesNo(info.IsAnonymous))
	if info.Stats != nil {
		fmt.Fprintf(&b, "Seeders: %d, Leechers: %d, Downloads: %d\n",
			info.Stats.Seeders, info.Stats.Leechers, info.Stats.Downloads)
	}

	if release := FormatRelease(info.Name); release != "" {
		fmt.Fprintf(&b, "Release: %s\n", release)
	}

	magnet, err := metainfo.ParseMagnetUri(info.Magnet)
	if err != nil {
		h.logger.Debugf("[NYAA] failed to parse magnet link: %v", err)
		return b.String(), nil
	}

	hash := magnet.InfoHash.HexString()
	if info.HashHex != "" && !strings.EqualFold(hash, info.HashHex) {
		h.logger.Warnf("[NYAA] magnet info hash %s does not match hash_hex %s", hash, info.HashHex)
	}
	fmt.Fprintf(&b, "Info hash: %s\n", hash)
	if info.HashB32 != "" {
		fmt.Fprintf(&b, "Info hash (base32): %s\n", info.HashB32)
	}
	b.WriteString(FormatTrackers(magnet.Trackers))

	return b.String(), nil
}

// FormatRelease describes what the torrent name says about the release.
func FormatRelease(name string) string {
	parsed := torrentname.Parse(name)
	if parsed == nil {
		return ""
	}

	var parts []string
	if parsed.Title != "" {
		parts = append(parts, "title="+parsed.Title)
	}
	if parsed.Year > 0 {
		parts = append(parts, fmt.Sprintf("year=%d", parsed.Year))
	}
	if parsed.Resolution != "" {
		parts = append(parts, "resolution="+parsed.Resolution)
	}
	if parsed.Source != "" {
		parts = append(parts, "source="+parsed.Source)
	}
	if parsed.Codec != "" {
		parts = append(parts, "codec="+parsed.Codec)
	}
	if parsed.Season > 0 {
		parts = append(parts, fmt.Sprintf("season=%d", parsed.Season))
	}
	if parsed.Episode > 0 {
		parts = append(parts, fmt.Sprintf("episode=%d", parsed.Episode))
	}
	return strings.Join(parts, ", ")
}

// FormatTrackers lists announce URLs, capped at MaxTrackersToShow.
func FormatTrackers(trackers []string) string {
	if len(trackers) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Trackers (%d):\n", len(trackers))
	for i, tr := range trackers {
		if i == constants.MaxTrackersToShow {
			fmt.Fprintf(&b, "  ... and %d more\n", len(trackers)-i)
			break
		}
		fmt.Fprintf(&b, "  %s\n", tr)
	}
	return b.String()
}
