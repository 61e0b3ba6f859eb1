package main

// mockBundleJSON is a shape-valid bundle for -mock runs.
const mockBundleJSON = `{
  "main_suggestions": {
    "movie_style_suggestion": "Give it the look of a 70s Western film.",
    "mood_suggestion": "Inject a strong sense of serenity and calm.",
    "color_focus_suggestion": "Emphasize the deep, cool blue tones throughout the image.",
    "other_main_suggestion": "Apply a classic portrait finish."
  },
  "normal_suggestions": [
    "Slightly reduce the overall exposure to add drama.",
    "Lift the shadows for a softer feel.",
    "Warm up the highlights a touch.",
    "Deepen the blacks for more contrast.",
    "Cool down the whites slightly.",
    "Add a gentle boost to vibrance.",
    "Soften the overall contrast.",
    "Bring out the golden tones in the light.",
    "Mute the saturation for a calmer look.",
    "Add warmth to the midtones.",
    "Brighten the overall image a little.",
    "Give the greens a softer, faded feel.",
    "Push the tint toward magenta very slightly.",
    "Let the highlights glow a bit more.",
    "Even out the tonal balance across the frame."
  ]
}`
