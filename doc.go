// Package songlink provides a client for the song.link (Odesli) API.
//
// Given a streaming URL or a platform-native identifier, the client resolves
// the matching song or album across every supported music platform and
// returns a typed result model.
//
// # Features
//
//   - Connection rotation over direct and proxied egress paths
//   - Per-connection cooldown after upstream rate limiting
//   - TTL-based response caching for successful lookups
//   - Typed errors for rate limiting, missing entities, and API failures
//   - Context-aware operations for graceful cancellation
//
// # Usage
//
//	client, err := songlink.NewClient(songlink.Config{APIKey: key}, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.LinksByURL(ctx, "https://open.spotify.com/track/4Km5HrUvYTaSUfiSGPJeQR")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for platform, link := range resp.LinksByPlatform {
//	    fmt.Printf("%s: %s\n", platform, link.URL)
//	}
package songlink
