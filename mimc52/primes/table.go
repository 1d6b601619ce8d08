package primes

// Table holds the low 32 bits of the 1024 largest primes p < 2^52 with
// p = 6k+5 and p >> 32 == 0xfffff, in ascending order.
var Table = [Count]uint32{
	0xfffee6a3, 0xfffee775, 0xfffee799, 0xfffee79f, 0xfffee7b7, 0xfffee7cf, 0xfffee829, 0xfffee85f,
	0xfffee8a1, 0xfffee8f5, 0xfffee925, 0xfffee931, 0xfffee961, 0xfffee98b, 0xfffeea15, 0xfffeea63,
	0xfffeeb11, 0xfffeeb59, 0xfffeeb8f, 0xfffeebb3, 0xfffeec0d, 0xfffeec5b, 0xfffeecdf, 0xfffeed03,
	0xfffeed57, 0xfffeed8d, 0xfffeedcf, 0xfffeeeb3, 0xfffeeec5, 0xfffeef2b, 0xfffeefa3, 0xfffeeffd,
	0xfffef027, 0xfffef05d, 0xfffef081, 0xfffef093, 0xfffef099, 0xfffef0a5, 0xfffef0d5, 0xfffef0ff,
	0xfffef147, 0xfffef16b, 0xfffef1d1, 0xfffef1e9, 0xfffef237, 0xfffef261, 0xfffef267, 0xfffef273,
	0xfffef2bb, 0xfffef2c1, 0xfffef2f1, 0xfffef2f7, 0xfffef315, 0xfffef339, 0xfffef38d, 0xfffef393,
	0xfffef3cf, 0xfffef405, 0xfffef43b, 0xfffef447, 0xfffef4b3, 0xfffef4bf, 0xfffef4dd, 0xfffef4e9,
	0xfffef4f5, 0xfffef543, 0xfffef561, 0xfffef567, 0xfffef603, 0xfffef615, 0xfffef61b, 0xfffef657,
	0xfffef68d, 0xfffef6e7, 0xfffef735, 0xfffef74d, 0xfffef753, 0xfffef75f, 0xfffef7ad, 0xfffef84f,
	0xfffef861, 0xfffef903, 0xfffef921, 0xfffef927, 0xfffef92d, 0xfffefa53, 0xfffefa6b, 0xfffefacb,
	0xfffefaf5, 0xfffefb01, 0xfffefb3d, 0xfffefb67, 0xfffefc2d, 0xfffefc75, 0xfffefcc3, 0xfffefcff,
	0xfffefd29, 0xfffefd5f, 0xfffefda7, 0xfffefe13, 0xfffefe91, 0xfffefea3, 0xfffefef1, 0xfffeff99,
	0xffff00fb, 0xffff0137, 0xffff0155, 0xffff015b, 0xffff0251, 0xffff0269, 0xffff0347, 0xffff0377,
	0xffff03d7, 0xffff0455, 0xffff04c1, 0xffff051b, 0xffff053f, 0xffff05db, 0xffff05f9, 0xffff0665,
	0xffff067d, 0xffff06c5, 0xffff0719, 0xffff074f, 0xffff0755, 0xffff07b5, 0xffff07f7, 0xffff080f,
	0xffff08c3, 0xffff08e1, 0xffff0911, 0xffff0941, 0xffff09d7, 0xffff09e9, 0xffff09ef, 0xffff0a0d,
	0xffff0a1f, 0xffff0a3d, 0xffff0a85, 0xffff0ac7, 0xffff0af1, 0xffff0b3f, 0xffff0b51, 0xffff0bab,
	0xffff0be7, 0xffff0c0b, 0xffff0d01, 0xffff0d3d, 0xffff0dcd, 0xffff0dd3, 0xffff0ddf, 0xffff0e63,
	0xffff0e87, 0xffff0ec3, 0xffff0f17, 0xffff0f29, 0xffff0f47, 0xffff0f6b, 0xffff101f, 0xffff1079,
	0xffff10eb, 0xffff10f7, 0xffff111b, 0xffff112d, 0xffff116f, 0xffff1193, 0xffff1277, 0xffff127d,
	0xffff129b, 0xffff12b3, 0xffff12b9, 0xffff12cb, 0xffff12d1, 0xffff12dd, 0xffff134f, 0xffff136d,
	0xffff138b, 0xffff13d9, 0xffff13eb, 0xffff1439, 0xffff14b1, 0xffff14b7, 0xffff1505, 0xffff155f,
	0xffff1571, 0xffff157d, 0xffff1583, 0xffff15fb, 0xffff1619, 0xffff16af, 0xffff16d3, 0xffff1733,
	0xffff178d, 0xffff17c9, 0xffff17e1, 0xffff17e7, 0xffff1877, 0xffff18a7, 0xffff18d7, 0xffff1931,
	0xffff1943, 0xffff19a9, 0xffff1a4b, 0xffff1a57, 0xffff1a99, 0xffff1aed, 0xffff1b29, 0xffff1b2f,
	0xffff1b77, 0xffff1ba7, 0xffff1bc5, 0xffff1c3d, 0xffff1c67, 0xffff1c8b, 0xffff1cb5, 0xffff1d45,
	0xffff1e59, 0xffff1e95, 0xffff1ecb, 0xffff1f2b, 0xffff1f67, 0xffff1f73, 0xffff1f9d, 0xffff2033,
	0xffff2057, 0xffff20ed, 0xffff20f9, 0xffff210b, 0xffff2141, 0xffff217d, 0xffff21a1, 0xffff21b9,
	0xffff2207, 0xffff2255, 0xffff22bb, 0xffff22cd, 0xffff22d9, 0xffff22f7, 0xffff2321, 0xffff2351,
	0xffff2405, 0xffff244d, 0xffff24a7, 0xffff24fb, 0xffff2507, 0xffff257f, 0xffff2597, 0xffff25af,
	0xffff2621, 0xffff263f, 0xffff267b, 0xffff2699, 0xffff26c9, 0xffff26e7, 0xffff277d, 0xffff286d,
	0xffff2885, 0xffff2897, 0xffff28bb, 0xffff28df, 0xffff294b, 0xffff29b7, 0xffff2a5f, 0xffff2abf,
	0xffff2b5b, 0xffff2b67, 0xffff2b8b, 0xffff2bc1, 0xffff2beb, 0xffff2c57, 0xffff2d1d, 0xffff2d35,
	0xffff2d4d, 0xffff2d77, 0xffff2d83, 0xffff2db3, 0xffff2ddd, 0xffff2dfb, 0xffff2e37, 0xffff2e49,
	0xffff2e7f, 0xffff2ef7, 0xffff2f1b, 0xffff2f6f, 0xffff3059, 0xffff316d, 0xffff31a9, 0xffff31c1,
	0xffff31df, 0xffff31f7, 0xffff3221, 0xffff3233, 0xffff3263, 0xffff326f, 0xffff32b7, 0xffff332f,
	0xffff3365, 0xffff33f5, 0xffff341f, 0xffff3443, 0xffff3491, 0xffff3497, 0xffff34b5, 0xffff34d3,
	0xffff352d, 0xffff3569, 0xffff3617, 0xffff37e5, 0xffff3875, 0xffff38ab, 0xffff38cf, 0xffff3929,
	0xffff3959, 0xffff397d, 0xffff399b, 0xffff39dd, 0xffff3a19, 0xffff3a4f, 0xffff3aaf, 0xffff3ae5,
	0xffff3b21, 0xffff3b39, 0xffff3ba5, 0xffff3bb7, 0xffff3bed, 0xffff3c53, 0xffff3ca7, 0xffff3cb3,
	0xffff3d0d, 0xffff3d3d, 0xffff3d97, 0xffff3db5, 0xffff3deb, 0xffff3df1, 0xffff3e39, 0xffff3ebd,
	0xffff3ee1, 0xffff3f1d, 0xffff3f35, 0xffff4019, 0xffff402b, 0xffff40a3, 0xffff4109, 0xffff4121,
	0xffff4151, 0xffff422f, 0xffff4235, 0xffff424d, 0xffff428f, 0xffff42d7, 0xffff4361, 0xffff4451,
	0xffff446f, 0xffff447b, 0xffff44c3, 0xffff44d5, 0xffff4511, 0xffff4517, 0xffff457d, 0xffff459b,
	0xffff45d1, 0xffff45e9, 0xffff45f5, 0xffff460d, 0xffff461f, 0xffff475d, 0xffff477b, 0xffff4799,
	0xffff4805, 0xffff482f, 0xffff4841, 0xffff4847, 0xffff484d, 0xffff4895, 0xffff48a1, 0xffff48d7,
	0xffff4937, 0xffff4997, 0xffff49c7, 0xffff4a27, 0xffff4a63, 0xffff4a69, 0xffff4ab1, 0xffff4ac3,
	0xffff4b17, 0xffff4b53, 0xffff4bb3, 0xffff4bbf, 0xffff4bdd, 0xffff4c0d, 0xffff4c49, 0xffff4c73,
	0xffff4c7f, 0xffff4caf, 0xffff4cfd, 0xffff4ded, 0xffff4df9, 0xffff4e5f, 0xffff4e77, 0xffff4ea1,
	0xffff4f49, 0xffff4fbb, 0xffff4fd9, 0xffff4ffd, 0xffff5045, 0xffff509f, 0xffff50cf, 0xffff510b,
	0xffff5111, 0xffff5135, 0xffff5171, 0xffff51a7, 0xffff526d, 0xffff52b5, 0xffff535d, 0xffff53b7,
	0xffff53c9, 0xffff53d5, 0xffff53f3, 0xffff53ff, 0xffff545f, 0xffff546b, 0xffff5471, 0xffff54c5,
	0xffff5501, 0xffff56b1, 0xffff56e1, 0xffff573b, 0xffff5759, 0xffff581f, 0xffff586d, 0xffff591b,
	0xffff5927, 0xffff59cf, 0xffff5a11, 0xffff5a17, 0xffff5a2f, 0xffff5a4d, 0xffff5acb, 0xffff5ae3,
	0xffff5b3d, 0xffff5bb5, 0xffff5bbb, 0xffff5bf1, 0xffff5c39, 0xffff5d3b, 0xffff5d47, 0xffff5da1,
	0xffff5db3, 0xffff5e31, 0xffff5e43, 0xffff5e6d, 0xffff5edf, 0xffff5eeb, 0xffff5f81, 0xffff5f8d,
	0xffff5f99, 0xffff5fb1, 0xffff5ff9, 0xffff6023, 0xffff6041, 0xffff604d, 0xffff6065, 0xffff60e3,
	0xffff60e9, 0xffff6245, 0xffff624b, 0xffff6263, 0xffff627b, 0xffff62db, 0xffff62e1, 0xffff632f,
	0xffff63f5, 0xffff6407, 0xffff642b, 0xffff6479, 0xffff64a3, 0xffff64c1, 0xffff64e5, 0xffff6521,
	0xffff6539, 0xffff656f, 0xffff657b, 0xffff6593, 0xffff6611, 0xffff6737, 0xffff674f, 0xffff6779,
	0xffff67c7, 0xffff67df, 0xffff680f, 0xffff6863, 0xffff6869, 0xffff689f, 0xffff68d5, 0xffff6a37,
	0xffff6a43, 0xffff6a55, 0xffff6a79, 0xffff6aa3, 0xffff6b09, 0xffff6b2d, 0xffff6b51, 0xffff6b75,
	0xffff6b9f, 0xffff6bab, 0xffff6bbd, 0xffff6be7, 0xffff6bf9, 0xffff6c59, 0xffff6c65, 0xffff6cad,
	0xffff6d2b, 0xffff6d4f, 0xffff6e7b, 0xffff6ec9, 0xffff6f11, 0xffff6f2f, 0xffff6fad, 0xffff6fe3,
	0xffff708b, 0xffff70b5, 0xffff7121, 0xffff713f, 0xffff71bd, 0xffff71f3, 0xffff7211, 0xffff7217,
	0xffff721d, 0xffff724d, 0xffff726b, 0xffff7271, 0xffff7277, 0xffff7313, 0xffff7349, 0xffff738b,
	0xffff73df, 0xffff73f1, 0xffff73fd, 0xffff746f, 0xffff74b7, 0xffff7505, 0xffff75b9, 0xffff7601,
	0xffff7637, 0xffff7655, 0xffff770f, 0xffff774b, 0xffff77db, 0xffff78bf, 0xffff78c5, 0xffff78fb,
	0xffff7907, 0xffff791f, 0xffff7925, 0xffff792b, 0xffff7991, 0xffff79a3, 0xffff79c1, 0xffff7a4b,
	0xffff7b1d, 0xffff7b3b, 0xffff7b5f, 0xffff7bcb, 0xffff7c13, 0xffff7d03, 0xffff7d21, 0xffff7d45,
	0xffff7d57, 0xffff7d6f, 0xffff7ded, 0xffff7e11, 0xffff7e5f, 0xffff7ebf, 0xffff7ee3, 0xffff7efb,
	0xffff7f07, 0xffff7f13, 0xffff7f37, 0xffff7f5b, 0xffff7f97, 0xffff7fd9, 0xffff8021, 0xffff8153,
	0xffff8189, 0xffff81b9, 0xffff8261, 0xffff82c7, 0xffff8303, 0xffff8387, 0xffff83f3, 0xffff844d,
	0xffff8495, 0xffff84ef, 0xffff84f5, 0xffff84fb, 0xffff8597, 0xffff85c1, 0xffff85c7, 0xffff85e5,
	0xffff860f, 0xffff863f, 0xffff8663, 0xffff86b7, 0xffff86f3, 0xffff870b, 0xffff8759, 0xffff8783,
	0xffff8819, 0xffff881f, 0xffff882b, 0xffff885b, 0xffff8885, 0xffff889d, 0xffff88af, 0xffff88bb,
	0xffff88fd, 0xffff8969, 0xffff89a5, 0xffff89c3, 0xffff89db, 0xffff8a05, 0xffff8a59, 0xffff8a7d,
	0xffff8acb, 0xffff8b25, 0xffff8b49, 0xffff8b55, 0xffff8c51, 0xffff8c5d, 0xffff8c99, 0xffff8cab,
	0xffff8cd5, 0xffff8ced, 0xffff8d23, 0xffff8d71, 0xffff8dd7, 0xffff8df5, 0xffff8ed3, 0xffff8f03,
	0xffff8f21, 0xffff8f63, 0xffff8f69, 0xffff8f99, 0xffff8fe7, 0xffff906b, 0xffff909b, 0xffff90d1,
	0xffff9113, 0xffff9161, 0xffff9167, 0xffff91bb, 0xffff91f7, 0xffff9257, 0xffff928d, 0xffff92c3,
	0xffff92c9, 0xffff92ff, 0xffff9341, 0xffff93a7, 0xffff9419, 0xffff942b, 0xffff94fd, 0xffff9557,
	0xffff95b7, 0xffff95bd, 0xffff961d, 0xffff9635, 0xffff9701, 0xffff97f1, 0xffff981b, 0xffff9851,
	0xffff9881, 0xffff98c9, 0xffff9917, 0xffff9977, 0xffff99d7, 0xffff99e9, 0xffff9a2b, 0xffff9a61,
	0xffff9ac1, 0xffff9b45, 0xffff9b6f, 0xffff9c05, 0xffff9c23, 0xffff9c47, 0xffff9cd7, 0xffff9ce3,
	0xffff9d5b, 0xffff9dbb, 0xffff9e69, 0xffff9e87, 0xffff9ea5, 0xffff9edb, 0xffff9f41, 0xffff9f89,
	0xffff9fb9, 0xffff9fd1, 0xffff9fd7, 0xffffa00d, 0xffffa031, 0xffffa05b, 0xffffa0f1, 0xffffa199,
	0xffffa1a5, 0xffffa1f3, 0xffffa289, 0xffffa2bf, 0xffffa2ef, 0xffffa3a3, 0xffffa3c7, 0xffffa3e5,
	0xffffa3f1, 0xffffa403, 0xffffa40f, 0xffffa445, 0xffffa44b, 0xffffa493, 0xffffa54d, 0xffffa5bf,
	0xffffa5e9, 0xffffa5ef, 0xffffa661, 0xffffa685, 0xffffa745, 0xffffa76f, 0xffffa775, 0xffffa793,
	0xffffa835, 0xffffa907, 0xffffa985, 0xffffa9bb, 0xffffa9cd, 0xffffaa15, 0xffffaa39, 0xffffaa3f,
	0xffffaae7, 0xffffab0b, 0xffffab83, 0xffffabad, 0xffffabdd, 0xffffac31, 0xffffacc7, 0xffffacf1,
	0xffffad33, 0xffffad69, 0xffffaead, 0xffffaf7f, 0xffffafbb, 0xffffb08d, 0xffffb0b1, 0xffffb0cf,
	0xffffb13b, 0xffffb15f, 0xffffb1d7, 0xffffb1ef, 0xffffb255, 0xffffb2fd, 0xffffb30f, 0xffffb357,
	0xffffb40b, 0xffffb477, 0xffffb4e3, 0xffffb4e9, 0xffffb561, 0xffffb5a3, 0xffffb645, 0xffffb663,
	0xffffb705, 0xffffb741, 0xffffb813, 0xffffb8a3, 0xffffb8c1, 0xffffb8cd, 0xffffba8f, 0xffffba9b,
	0xffffbae3, 0xffffbae9, 0xffffbafb, 0xffffbb3d, 0xffffbb61, 0xffffbb6d, 0xffffbbaf, 0xffffbc21,
	0xffffbc33, 0xffffbc5d, 0xffffbc69, 0xffffbcc3, 0xffffbd1d, 0xffffbd35, 0xffffbd6b, 0xffffbd8f,
	0xffffbdad, 0xffffbdb3, 0xffffbdb9, 0xffffbeb5, 0xffffbec1, 0xffffbed9, 0xffffbee5, 0xffffbf39,
	0xffffc011, 0xffffc0ef, 0xffffc0fb, 0xffffc101, 0xffffc1d3, 0xffffc29f, 0xffffc2bd, 0xffffc3ad,
	0xffffc3e3, 0xffffc3e9, 0xffffc401, 0xffffc419, 0xffffc47f, 0xffffc4f7, 0xffffc5c9, 0xffffc65f,
	0xffffc665, 0xffffc695, 0xffffc6b3, 0xffffc6ef, 0xffffc713, 0xffffc719, 0xffffc755, 0xffffc773,
	0xffffc7a9, 0xffffc7bb, 0xffffc7c7, 0xffffc809, 0xffffc827, 0xffffc83f, 0xffffc893, 0xffffc8d5,
	0xffffc941, 0xffffc97d, 0xffffc9d7, 0xffffca7f, 0xffffcad9, 0xffffcaf7, 0xffffcb63, 0xffffcb9f,
	0xffffcbf9, 0xffffcc59, 0xffffcc5f, 0xffffccad, 0xffffcce9, 0xffffcd2b, 0xffffce6f, 0xffffceab,
	0xffffcf6b, 0xffffcf95, 0xffffcfdd, 0xffffd049, 0xffffd0e5, 0xffffd109, 0xffffd13f, 0xffffd1b1,
	0xffffd1f3, 0xffffd247, 0xffffd30d, 0xffffd337, 0xffffd33d, 0xffffd397, 0xffffd3bb, 0xffffd3c1,
	0xffffd3d3, 0xffffd409, 0xffffd40f, 0xffffd4a5, 0xffffd523, 0xffffd547, 0xffffd607, 0xffffd631,
	0xffffd64f, 0xffffd655, 0xffffd661, 0xffffd6af, 0xffffd6d9, 0xffffd6df, 0xffffd6fd, 0xffffd715,
	0xffffd721, 0xffffd7ed, 0xffffd817, 0xffffd82f, 0xffffd87d, 0xffffd925, 0xffffd943, 0xffffd979,
	0xffffd997, 0xffffd9c7, 0xffffda09, 0xffffda9f, 0xffffdb23, 0xffffdb35, 0xffffdbd7, 0xffffdc49,
	0xffffdce5, 0xffffdd51, 0xffffdd69, 0xffffde65, 0xffffde7d, 0xffffdea1, 0xffffdf37, 0xffffdf3d,
	0xffffdfa9, 0xffffdfdf, 0xffffe003, 0xffffe039, 0xffffe099, 0xffffe0c3, 0xffffe0e1, 0xffffe147,
	0xffffe1e9, 0xffffe1ef, 0xffffe22b, 0xffffe315, 0xffffe32d, 0xffffe36f, 0xffffe381, 0xffffe39f,
	0xffffe3bd, 0xffffe3cf, 0xffffe3e1, 0xffffe48f, 0xffffe49b, 0xffffe4dd, 0xffffe4ef, 0xffffe525,
	0xffffe591, 0xffffe59d, 0xffffe5c7, 0xffffe5e5, 0xffffe621, 0xffffe633, 0xffffe639, 0xffffe693,
	0xffffe717, 0xffffe76b, 0xffffe78f, 0xffffe801, 0xffffe807, 0xffffe813, 0xffffe8a9, 0xffffe903,
	0xffffe93f, 0xffffe963, 0xffffe981, 0xffffea05, 0xffffea35, 0xffffea4d, 0xffffead1, 0xffffeb8b,
	0xffffebd9, 0xffffebf7, 0xffffec57, 0xffffec69, 0xffffec87, 0xffffeca5, 0xffffeced, 0xffffed59,
	0xffffed83, 0xffffee49, 0xffffeecd, 0xffffef9f, 0xffffefdb, 0xfffff017, 0xfffff071, 0xfffff095,
	0xfffff0e3, 0xfffff15b, 0xfffff167, 0xfffff209, 0xfffff257, 0xfffff269, 0xfffff2bd, 0xfffff2cf,
	0xfffff335, 0xfffff437, 0xfffff449, 0xfffff48b, 0xfffff4a3, 0xfffff4bb, 0xfffff557, 0xfffff57b,
	0xfffff5cf, 0xfffff629, 0xfffff731, 0xfffff74f, 0xfffff77f, 0xfffff7e5, 0xfffff803, 0xfffff827,
	0xfffff8a5, 0xfffff941, 0xfffff98f, 0xfffff9a7, 0xfffff9b9, 0xfffffa13, 0xfffffa4f, 0xfffffa85,
	0xfffffb4b, 0xfffffb5d, 0xfffffb6f, 0xfffffb8d, 0xfffffbab, 0xfffffbb7, 0xfffffbc3, 0xfffffc83,
	0xfffffcb9, 0xfffffce3, 0xfffffd0d, 0xfffffd6d, 0xfffffd85, 0xfffffdd3, 0xfffffe27, 0xfffffe63,
	0xfffffe75, 0xfffffeb1, 0xfffffef3, 0xffffff2f, 0xffffff3b, 0xffffff53, 0xffffff71, 0xffffffd1,
}
