// Package quiz holds the taste quiz question bank and converts answers
// into a user feature vector.
package quiz

// Option is one selectable quiz answer. Weights map feature dimensions
// (by wire name) to the contribution this choice makes.
type Option struct {
	ID      string
	Text    string
	Weights map[string]float64
}

// Question is one quiz question with its options.
type Question struct {
	ID      string
	Text    string
	Options []Option
}

// Questions is the fixed question bank, in presentation order.
var Questions = []Question{
	{
		ID:   "energy_1",
		Text: "Pick the energy level that matches your current mood:",
		Options: []Option{
			{ID: "a", Text: "I want to feel alive and pumped up",
				Weights: map[string]float64{"energy": 1.0, "loudness": 0.7, "valence": 0.6}},
			{ID: "b", Text: "Something with momentum but not overwhelming",
				Weights: map[string]float64{"energy": 0.6, "danceability": 0.5}},
			{ID: "c", Text: "Relaxed and easy-going",
				Weights: map[string]float64{"energy": 0.3, "acousticness": 0.4}},
			{ID: "d", Text: "Calm, ambient, atmospheric",
				Weights: map[string]float64{"energy": 0.1, "instrumentalness": 0.5}},
		},
	},
	{
		ID:   "energy_2",
		Text: "When you need music to help you focus, you prefer:",
		Options: []Option{
			{ID: "a", Text: "High-intensity tracks that keep me alert",
				Weights: map[string]float64{"energy": 0.9, "loudness": 0.6}},
			{ID: "b", Text: "Steady rhythms with moderate energy",
				Weights: map[string]float64{"energy": 0.5, "danceability": 0.4}},
			{ID: "c", Text: "Soft background music",
				Weights: map[string]float64{"energy": 0.2, "acousticness": 0.5, "instrumentalness": 0.4}},
			{ID: "d", Text: "Complete silence or minimal ambient sounds",
				Weights: map[string]float64{"energy": 0.05, "instrumentalness": 0.8}},
		},
	},
	{
		ID:   "mood_1",
		Text: "What emotional tone are you looking for right now?",
		Options: []Option{
			{ID: "a", Text: "Happy and uplifting - I want to feel good",
				Weights: map[string]float64{"valence": 1.0, "energy": 0.6}},
			{ID: "b", Text: "Bittersweet - something that understands complex feelings",
				Weights: map[string]float64{"valence": 0.5, "acousticness": 0.3}},
			{ID: "c", Text: "Melancholic - I'm in a reflective mood",
				Weights: map[string]float64{"valence": 0.2, "acousticness": 0.5}},
			{ID: "d", Text: "Dark and intense - I want depth",
				Weights: map[string]float64{"valence": 0.1, "energy": 0.6, "loudness": 0.5}},
		},
	},
	{
		ID:   "mood_2",
		Text: "Music that makes you feel nostalgic tends to be:",
		Options: []Option{
			{ID: "a", Text: "Warm and comforting, like a sunny memory",
				Weights: map[string]float64{"valence": 0.7, "acousticness": 0.6}},
			{ID: "b", Text: "Energetic reminders of good times",
				Weights: map[string]float64{"valence": 0.8, "energy": 0.7, "danceability": 0.5}},
			{ID: "c", Text: "Wistful and longing",
				Weights: map[string]float64{"valence": 0.3, "acousticness": 0.4}},
			{ID: "d", Text: "I don't usually seek nostalgic music",
				Weights: map[string]float64{"valence": 0.5}},
		},
	},
	{
		ID:   "dance_1",
		Text: "When a good song comes on, you typically:",
		Options: []Option{
			{ID: "a", Text: "Can't help but move - dancing is inevitable",
				Weights: map[string]float64{"danceability": 1.0, "energy": 0.7}},
			{ID: "b", Text: "Nod along or tap your foot",
				Weights: map[string]float64{"danceability": 0.6}},
			{ID: "c", Text: "Just listen and appreciate",
				Weights: map[string]float64{"danceability": 0.3, "instrumentalness": 0.3}},
			{ID: "d", Text: "Get lost in thought",
				Weights: map[string]float64{"danceability": 0.1, "acousticness": 0.4}},
		},
	},
	{
		ID:   "dance_2",
		Text: "At a party, you prefer music that:",
		Options: []Option{
			{ID: "a", Text: "Gets everyone on the dance floor",
				Weights: map[string]float64{"danceability": 1.0, "energy": 0.8, "valence": 0.7}},
			{ID: "b", Text: "Creates a fun vibe without demanding attention",
				Weights: map[string]float64{"danceability": 0.6, "valence": 0.6}},
			{ID: "c", Text: "Allows for conversation",
				Weights: map[string]float64{"danceability": 0.3, "energy": 0.3}},
			{ID: "d", Text: "I prefer smaller gatherings with curated playlists",
				Weights: map[string]float64{"danceability": 0.4, "acousticness": 0.4}},
		},
	},
	{
		ID:   "acoustic_1",
		Text: "How do you feel about acoustic/unplugged music?",
		Options: []Option{
			{ID: "a", Text: "Love it - there's something raw and authentic about it",
				Weights: map[string]float64{"acousticness": 1.0, "instrumentalness": 0.3}},
			{ID: "b", Text: "Enjoy it sometimes, depends on my mood",
				Weights: map[string]float64{"acousticness": 0.5}},
			{ID: "c", Text: "Prefer a mix of electronic and organic sounds",
				Weights: map[string]float64{"acousticness": 0.3, "energy": 0.5}},
			{ID: "d", Text: "Give me synthesizers and electronic production",
				Weights: map[string]float64{"acousticness": 0.1, "energy": 0.6}},
		},
	},
	{
		ID:   "vocals_1",
		Text: "When it comes to vocals in music:",
		Options: []Option{
			{ID: "a", Text: "Lyrics and vocals are essential - I connect with the words",
				Weights: map[string]float64{"instrumentalness": 0.0}},
			{ID: "b", Text: "I like vocals but they don't need to be the focus",
				Weights: map[string]float64{"instrumentalness": 0.3}},
			{ID: "c", Text: "Often prefer instrumental music",
				Weights: map[string]float64{"instrumentalness": 0.7}},
			{ID: "d", Text: "Strongly prefer music without vocals",
				Weights: map[string]float64{"instrumentalness": 1.0}},
		},
	},
	{
		ID:   "tempo_1",
		Text: "Your preferred tempo for everyday listening:",
		Options: []Option{
			{ID: "a", Text: "Fast and driving (140+ BPM)",
				Weights: map[string]float64{"bpm_normalized": 1.0, "energy": 0.7}},
			{ID: "b", Text: "Upbeat and groovy (110-140 BPM)",
				Weights: map[string]float64{"bpm_normalized": 0.7, "danceability": 0.6}},
			{ID: "c", Text: "Moderate and steady (80-110 BPM)",
				Weights: map[string]float64{"bpm_normalized": 0.5}},
			{ID: "d", Text: "Slow and deliberate (under 80 BPM)",
				Weights: map[string]float64{"bpm_normalized": 0.2, "acousticness": 0.3}},
		},
	},
	{
		ID:   "context_1",
		Text: "You're going for a workout. What do you reach for?",
		Options: []Option{
			{ID: "a", Text: "High-energy bangers that push me harder",
				Weights: map[string]float64{"energy": 1.0, "loudness": 0.8, "danceability": 0.7}},
			{ID: "b", Text: "Steady beats that help me pace myself",
				Weights: map[string]float64{"energy": 0.6, "danceability": 0.6}},
			{ID: "c", Text: "I don't really listen to music while exercising",
				Weights: map[string]float64{"energy": 0.4}},
			{ID: "d", Text: "Podcasts or audiobooks instead",
				Weights: map[string]float64{"instrumentalness": 0.2}},
		},
	},
	{
		ID:   "context_2",
		Text: "For a late-night drive, you'd choose:",
		Options: []Option{
			{ID: "a", Text: "Atmospheric electronic or synthwave",
				Weights: map[string]float64{"energy": 0.5, "instrumentalness": 0.6, "valence": 0.4}},
			{ID: "b", Text: "Chill indie or alternative",
				Weights: map[string]float64{"acousticness": 0.5, "energy": 0.4, "valence": 0.5}},
			{ID: "c", Text: "Upbeat pop or rock to stay alert",
				Weights: map[string]float64{"energy": 0.8, "valence": 0.7}},
			{ID: "d", Text: "R&B or soul for smooth vibes",
				Weights: map[string]float64{"danceability": 0.6, "valence": 0.6, "acousticness": 0.4}},
		},
	},
	{
		ID:   "context_3",
		Text: "When you're feeling stressed, music should:",
		Options: []Option{
			{ID: "a", Text: "Help me release tension with something intense",
				Weights: map[string]float64{"energy": 0.9, "loudness": 0.7}},
			{ID: "b", Text: "Distract me with something fun and upbeat",
				Weights: map[string]float64{"valence": 0.8, "danceability": 0.6}},
			{ID: "c", Text: "Calm me down with something peaceful",
				Weights: map[string]float64{"energy": 0.2, "acousticness": 0.7, "instrumentalness": 0.5}},
			{ID: "d", Text: "Match my mood so I can process it",
				Weights: map[string]float64{"valence": 0.3, "acousticness": 0.4}},
		},
	},
}

// QuestionByID looks up a question in the bank.
func QuestionByID(id string) (*Question, bool) {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i], true
		}
	}
	return nil, false
}
