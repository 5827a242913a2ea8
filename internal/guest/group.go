package guest

import (
	"strings"

	"github.com/hostkit/rental-tools/internal/fields"
)

// Group merges the entries of one guest across several bookings.
type Group struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Rooms   []string `json:"rooms"`
	CheckIn string   `json:"check_in"` // earliest, YYMMDD
	Count   int      `json:"bookings"`
}

// GroupKey identifies a guest: normalized name plus trimmed phone.
func GroupKey(e Entry) string {
	return fields.NormalizeName(e.Name) + "|" + fields.TrimPhone(e.Phone)
}

// GroupEntries merges entries sharing a GroupKey. Groups keep first-seen
// order, rooms are unioned in first-seen order, and the earliest check-in wins.
func GroupEntries(entries []Entry) []*Group {
	byKey := make(map[string]*Group)
	out := make([]*Group, 0)

	for _, e := range entries {
		key := GroupKey(e)

		g, ok := byKey[key]
		if !ok {
			g = &Group{
				Key:   key,
				Name:  fields.DisplayName(e.Name),
				Phone: strings.TrimSpace(e.Phone),
			}
			byKey[key] = g
			out = append(out, g)
		}

		g.Count++
		g.addRoom(e.RoomName)

		// YYMMDD compares correctly as a string.
		if checkIn := fields.FormatCompact(e.CheckIn); checkIn != "" {
			if g.CheckIn == "" || checkIn < g.CheckIn {
				g.CheckIn = checkIn
			}
		}
	}

	return out
}

func (g *Group) addRoom(room string) {
	room = strings.TrimSpace(room)
	if room == "" {
		return
	}
	for _, r := range g.Rooms {
		if r == room {
			return
		}
	}
	g.Rooms = append(g.Rooms, room)
}
