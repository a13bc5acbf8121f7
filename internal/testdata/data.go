package testdata

// Lane 0 has a pair of notes 200ms apart, lane 3 a chord partner of lane 0
const data = `
name: Fixture
bpm: 120
pattern:
  - {time: 2s, lane: 0}
  - {time: 2.5s, lane: 1}
  - {time: 3s, lane: 2}
  - {time: 3.5s, lane: 3}
  - {time: 10s, lane: 0}
  - {time: 10s, lane: 3}
  - {time: 10.2s, lane: 0}
  - {time: 12s, lane: 1}
`
