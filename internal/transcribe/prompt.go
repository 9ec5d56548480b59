package transcribe

// DetailedPrompt asks for speaker diarization and the structured
// [METADATA]/[TRANSCRIPT] response shape the parser expects.
const DetailedPrompt = `
Please transcribe this audio recording with high accuracy and detail:

REQUIREMENTS:
1. SPEAKER IDENTIFICATION:
   - Identify each unique speaker consistently (Speaker 1, Speaker 2, etc.)
   - Use the same speaker labels throughout the entire recording
   - Note when speakers change

2. TIMESTAMPING:
   - Provide timestamps at every speaker change [HH:MM:SS]
   - Add timestamps for major topic changes [approx. every 2-3 minutes]
   - Mark significant pauses [pause], overlapping speech [overlap], or inaudible sections [inaudible]

3. FORMATTING:
   - Use clear paragraph breaks between different topics
   - Include important non-verbal cues: [laughs], [applause], [coughs] when relevant
   - Maintain proper punctuation and capitalization
   - Preserve technical terms or specific jargon accurately

4. OUTPUT STRUCTURE:
   Start with metadata section, then the transcript.

Format your response exactly like this:

[METADATA]
Total Speakers: [number]
Audio Quality: [excellent/good/fair/poor]
Key Topics: [list main topics discussed]

[TRANSCRIPT]
[00:00:00] Speaker 1: Welcome everyone to today's meeting. Let's start with the quarterly review.
[00:00:15] Speaker 2: Thanks John. I'll begin with the sales numbers...
[00:02:30] Speaker 1: [interrupting] Can you clarify those Q3 figures?
[00:02:35] Speaker 2: Certainly. The Q3 numbers were...
`

// BasicPrompt is the plain variant used when diarization is disabled. The
// response usually comes back unstructured, which the parser absorbs on its
// fallback path.
const BasicPrompt = `
Please transcribe this audio recording accurately with timestamps at regular intervals.
Include speaker changes when detectable and maintain proper formatting.
`
