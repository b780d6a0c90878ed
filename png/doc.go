// Package png embeds arbitrary file payloads inside PNG images as private
// chunks, recoverable later by key, while keeping the host image valid and
// byte-faithful to every unrelated chunk.
//
// The lifecycle is a single parse-mutate-serialize cycle over an in-memory
// buffer:
//
//	c, err := png.Parse(data, png.ParseOptions{})
//	if err != nil {
//	    return err
//	}
//	if err := c.Insert("config.json", payload, true); err != nil {
//	    return err
//	}
//	out := c.Serialize()
//
// Parse keeps chunk payloads as zero-copy views into the supplied buffer,
// which must therefore stay unmodified until the container is serialized.
// Mutations never touch that buffer: an insert or replace builds a fresh
// payload owned by the affected chunk alone, so the views of every other
// chunk remain valid. Containers are not safe for concurrent use; callers
// that share one must serialize access externally.
package png
