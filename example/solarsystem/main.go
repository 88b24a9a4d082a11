package main

import (
	"fmt"
	"log"

	"github.com/akmonengine/lightyear"
	"github.com/akmonengine/lightyear/galaxy"
	"github.com/akmonengine/lightyear/pose"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	world, err := lightyear.NewWorld(lightyear.DefaultLargeWorldConfig())
	if err != nil {
		log.Fatal(err)
	}
	world.Workers = 4

	world.Events.Subscribe(lightyear.ORIGIN_SHIFT, func(event lightyear.Event) {
		shift := event.(lightyear.OriginShiftEvent)
		fmt.Printf("origin shifted by %v, re-deriving cached render buffers\n", shift.Delta)
	})

	// A star 150 million km out, a planet orbiting it, a moon around the planet
	star := world.Hierarchy.Add(pose.NO_PARENT, pose.FromPosition(mgl64.Vec3{1.5e11, 0, 0}))
	planet := world.Hierarchy.Add(star, pose.FromPosition(mgl64.Vec3{-1.5e11 + 6.37e6, 0, 0}))
	world.Hierarchy.Add(planet, pose.FromPosition(mgl64.Vec3{3.84e8, 0, 0}))

	// Fly the camera from near the planet out towards the star
	for _, camera := range []mgl64.Vec3{
		{6.0e6, 0, 0},
		{7.0e6, 0, 0}, // beyond the 50km threshold: shift
		{1.0e9, 0, 0}, // long hop: shift again
	} {
		world.BeginFrame(camera)

		poses, err := world.RenderPoses(nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("camera %v -> planet at %v (relative)\n", camera, poses[1].Position)

		world.EndFrame()
	}

	// A star system in another arm of the galaxy stays in sectored form
	far := galaxy.FlatPosition(mgl64.Vec3{9.4e17, 2.1e16, 0})
	far, err = world.Galaxy.Promote(far, world.Coords.Origin())
	if err != nil {
		log.Fatal(err)
	}
	if pos, ok := far.AsSectored(); ok {
		fmt.Printf("distant system stored as %v\n", pos)
	}
}
